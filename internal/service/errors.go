package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a request with missing or unusable
	// required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
