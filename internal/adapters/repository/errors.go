package repository

import "errors"

// Sentinel kinds for result store errors.
var (
	ErrNotFound     = errors.New("composition result not found")
	ErrInvalidLimit = errors.New("invalid recent-results limit")
	ErrInvalidJobID = errors.New("invalid job id")
)
