package dtos

import "go.mongodb.org/mongo-driver/bson"

// JobCreationRequest is the validated body of POST /jobs. The old
// pass-through body accepted any JSON blob; enumerating the fields here
// keeps unknown keys out of the collection.
type JobCreationRequest struct {
	Title               string `json:"title" binding:"required"`
	HREmail             string `json:"hr_email" binding:"required,email"`
	ApplicationDeadline string `json:"applicationDeadline" binding:"required"`

	// Optional fields
	Description string `json:"description"`
	Company     string `json:"company"`
	CompanyLogo string `json:"company_logo"`
	Location    string `json:"location"`
	JobType     string `json:"jobType"`
	Category    string `json:"category"`
	SalaryRange string `json:"salaryRange"`
	HRName      string `json:"hr_name"`
}

// JobUpdateRequest is the body of PUT /jobs/:id. Every field is a
// pointer so only the keys the caller actually sent end up in the $set
// document (upsert merge semantics).
type JobUpdateRequest struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	Company             *string `json:"company"`
	CompanyLogo         *string `json:"company_logo"`
	Location            *string `json:"location"`
	JobType             *string `json:"jobType"`
	Category            *string `json:"category"`
	SalaryRange         *string `json:"salaryRange"`
	HREmail             *string `json:"hr_email"`
	HRName              *string `json:"hr_name"`
	ApplicationDeadline *string `json:"applicationDeadline"`
	ApplicantsCount     *int64  `json:"applicants_count"`
}

// SetDocument builds the $set payload from the fields that were present
// in the request body.
func (r *JobUpdateRequest) SetDocument() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Company != nil {
		set["company"] = *r.Company
	}
	if r.CompanyLogo != nil {
		set["company_logo"] = *r.CompanyLogo
	}
	if r.Location != nil {
		set["location"] = *r.Location
	}
	if r.JobType != nil {
		set["jobType"] = *r.JobType
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.SalaryRange != nil {
		set["salaryRange"] = *r.SalaryRange
	}
	if r.HREmail != nil {
		set["hr_email"] = *r.HREmail
	}
	if r.HRName != nil {
		set["hr_name"] = *r.HRName
	}
	if r.ApplicationDeadline != nil {
		set["applicationDeadline"] = *r.ApplicationDeadline
	}
	if r.ApplicantsCount != nil {
		set["applicants_count"] = *r.ApplicantsCount
	}
	return set
}
