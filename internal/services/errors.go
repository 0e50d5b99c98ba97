package services

import "github.com/pkg/errors"

var (
	// ErrInvalidID is returned before the store is touched when an id
	// path/body parameter is not a 24-character object id.
	ErrInvalidID = errors.New("Id must be 24 character")

	// ErrAlreadyApplied is the duplicate-submission business conflict:
	// one application per (candidate_email, job_id) pair.
	ErrAlreadyApplied = errors.New("Allready Applied")
)
