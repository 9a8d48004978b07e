package models

import "errors"

// Error taxonomy. Handlers map these onto HTTP statuses in one place
// (the Fiber error handler in cmd/api).
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrUnusableDocument   = errors.New("no usable text in document")
	ErrAIService          = errors.New("ai service failure")
	ErrNoJSONFound        = errors.New("no JSON in response")
	ErrMalformedJSON      = errors.New("malformed JSON in response")
	ErrStorage            = errors.New("storage failure")
)
