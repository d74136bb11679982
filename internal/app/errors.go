package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotStarted      = errors.New("service not started")
	ErrInvalidInput    = errors.New("invalid input")
)
