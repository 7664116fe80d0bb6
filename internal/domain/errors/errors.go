package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrOrderingDisabled  = errors.New("ordering is disabled for business")
	ErrInvalidOrder      = errors.New("invalid order payload")
	ErrInvalidBusiness   = errors.New("invalid business payload")
	ErrInvalidSinkConfig = errors.New("invalid sink configuration")
)
