package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a posting stored in the "jobs" collection. The _id is assigned
// by Mongo on insert, so the public id is always a 24-hex string.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	CompanyLogo string             `bson:"company_logo,omitempty" json:"company_logo,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	JobType     string             `bson:"jobType,omitempty" json:"jobType,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	SalaryRange string             `bson:"salaryRange,omitempty" json:"salaryRange,omitempty"`

	HREmail string `bson:"hr_email" json:"hr_email"`
	HRName  string `bson:"hr_name,omitempty" json:"hr_name,omitempty"`

	// Stored as YYYY-MM-DD so a lexicographic $gte against today's date
	// is also a chronological comparison.
	ApplicationDeadline string `bson:"applicationDeadline" json:"applicationDeadline"`

	ApplicantsCount int64 `bson:"applicants_count" json:"applicants_count"`
}

// Application is a candidate's submission for a Job, stored in the
// "application" collection. job_id references Job.ID as a hex string;
// the reference is not enforced by the store. hr_email is denormalized
// from the job at submission time so a recruiter can list applicants
// without a join.
type Application struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	JobID          string             `bson:"job_id" json:"job_id"`
	CandidateEmail string             `bson:"candidate_email" json:"candidate_email"`
	HREmail        string             `bson:"hr_email,omitempty" json:"hr_email,omitempty"`
	LinkedIn       string             `bson:"linkedIn,omitempty" json:"linkedIn,omitempty"`
	Github         string             `bson:"github,omitempty" json:"github,omitempty"`
	Resume         string             `bson:"resume,omitempty" json:"resume,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
}
