package dtos

// ApplicationRequest is the validated body of POST /application.
type ApplicationRequest struct {
	JobID          string `json:"job_id" binding:"required,len=24"`
	CandidateEmail string `json:"candidate_email" binding:"required,email"`

	// Optional fields
	HREmail  string `json:"hr_email"`
	LinkedIn string `json:"linkedIn"`
	Github   string `json:"github"`
	Resume   string `json:"resume"`
	Status   string `json:"status"`
}

// StatusUpdateRequest is the body of PATCH /application/:id. Status is
// a free-form string; recruiters set whatever label their flow uses.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
