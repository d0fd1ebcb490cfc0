package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrEmptyCorpus  = errors.New("empty corpus")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
