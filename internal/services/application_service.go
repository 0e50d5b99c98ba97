package services

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal/internal/database"
	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

type ApplicationService struct {
	applications *mongo.Collection
}

func NewApplicationService(db *database.DB) *ApplicationService {
	return &ApplicationService{applications: db.Applications}
}

func (s *ApplicationService) ListByCandidate(ctx context.Context, email string) ([]models.Application, error) {
	return s.find(ctx, bson.M{"candidate_email": email})
}

// ListForJob returns the applications a recruiter received for one of
// their jobs. hr_email is matched on the application document itself,
// which carries it since submission time.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID, ownerEmail string) ([]models.Application, error) {
	return s.find(ctx, bson.M{"hr_email": ownerEmail, "job_id": jobID})
}

func (s *ApplicationService) find(ctx context.Context, filter bson.M) ([]models.Application, error) {
	cursor, err := s.applications.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "finding applications")
	}
	applications := []models.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, errors.Wrap(err, "decoding applications")
	}
	return applications, nil
}

// Submit inserts the application unless the candidate already applied
// to this job. The existence check and the insert are two separate
// store operations, so two racing submissions can both get through;
// that window is accepted. The applicants_count bump on the job is the
// caller's follow-up call, not part of this operation.
func (s *ApplicationService) Submit(ctx context.Context, req *dtos.ApplicationRequest) (*dtos.InsertResult, error) {
	filter := bson.M{
		"candidate_email": req.CandidateEmail,
		"job_id":          req.JobID,
	}
	err := s.applications.FindOne(ctx, filter).Err()
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "checking for existing application")
	}

	application := models.Application{
		JobID:          req.JobID,
		CandidateEmail: req.CandidateEmail,
		HREmail:        req.HREmail,
		LinkedIn:       req.LinkedIn,
		Github:         req.Github,
		Resume:         req.Resume,
		Status:         req.Status,
	}

	result, err := s.applications.InsertOne(ctx, application)
	if err != nil {
		return nil, errors.Wrap(err, "inserting application")
	}
	return &dtos.InsertResult{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id, status string) (*dtos.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"status": status}}
	result, err := s.applications.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, errors.Wrap(err, "updating application status")
	}
	return updateResult(result), nil
}

func (s *ApplicationService) Delete(ctx context.Context, id string) (*dtos.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.applications.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Wrap(err, "deleting application")
	}
	return &dtos.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}
