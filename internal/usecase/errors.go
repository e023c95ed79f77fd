package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrUnrecognizedContent   = errors.New("unrecognized content")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
