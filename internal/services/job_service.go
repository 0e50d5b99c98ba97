package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobportal/internal/database"
	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

type JobService struct {
	jobs *mongo.Collection
}

func NewJobService(db *database.DB) *JobService {
	return &JobService{jobs: db.Jobs}
}

// parseObjectID applies the cheap 24-character shape check before
// handing the id to the driver, so malformed ids never reach the store.
func parseObjectID(id string) (primitive.ObjectID, error) {
	if len(id) != 24 {
		return primitive.NilObjectID, ErrInvalidID
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// availableFilter matches jobs whose deadline has not passed. Deadlines
// are YYYY-MM-DD strings, so $gte against today's date string is a
// chronological comparison; a deadline equal to today still matches.
func availableFilter(now time.Time) bson.M {
	today := now.Format("2006-01-02")
	return bson.M{"applicationDeadline": bson.M{"$gte": today}}
}

func (s *JobService) ListAll(ctx context.Context) ([]models.Job, error) {
	return s.find(ctx, bson.M{})
}

func (s *JobService) ListAvailable(ctx context.Context) ([]models.Job, error) {
	return s.find(ctx, availableFilter(time.Now()))
}

func (s *JobService) ListByOwner(ctx context.Context, email string) ([]models.Job, error) {
	return s.find(ctx, bson.M{"hr_email": email})
}

func (s *JobService) find(ctx context.Context, filter bson.M) ([]models.Job, error) {
	cursor, err := s.jobs.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "finding jobs")
	}
	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, errors.Wrap(err, "decoding jobs")
	}
	return jobs, nil
}

// GetByID returns (nil, nil) when no job matches, so the handler can
// send an empty body the way the front end expects.
func (s *JobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var job models.Job
	err = s.jobs.FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding job")
	}
	return &job, nil
}

func (s *JobService) Create(ctx context.Context, req *dtos.JobCreationRequest) (*dtos.InsertResult, error) {
	job := models.Job{
		Title:               req.Title,
		Description:         req.Description,
		Company:             req.Company,
		CompanyLogo:         req.CompanyLogo,
		Location:            req.Location,
		JobType:             req.JobType,
		Category:            req.Category,
		SalaryRange:         req.SalaryRange,
		HREmail:             req.HREmail,
		HRName:              req.HRName,
		ApplicationDeadline: req.ApplicationDeadline,
	}

	result, err := s.jobs.InsertOne(ctx, job)
	if err != nil {
		return nil, errors.Wrap(err, "inserting job")
	}
	return &dtos.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// Upsert merges the provided fields into the matching job, creating it
// if nothing matches. That can resurrect a job under a stale id; the
// front end relies on it for its edit form.
func (s *JobService) Upsert(ctx context.Context, id string, req *dtos.JobUpdateRequest) (*dtos.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": req.SetDocument()}
	result, err := s.jobs.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, errors.Wrap(err, "upserting job")
	}
	return updateResult(result), nil
}

// IncrementApplicants bumps applicants_count by one. A nonexistent id
// is a successful no-op with zero matched documents.
func (s *JobService) IncrementApplicants(ctx context.Context, id string) (*dtos.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$inc": bson.M{"applicants_count": 1}}
	result, err := s.jobs.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, errors.Wrap(err, "incrementing applicants count")
	}
	return updateResult(result), nil
}

// Delete reports success even when nothing matched; deletedCount tells
// the caller whether a document actually went away.
func (s *JobService) Delete(ctx context.Context, id string) (*dtos.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.jobs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Wrap(err, "deleting job")
	}
	return &dtos.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

func updateResult(r *mongo.UpdateResult) *dtos.UpdateResult {
	return &dtos.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}
