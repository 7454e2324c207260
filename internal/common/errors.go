package common

import "errors"

// Local failure domain. These surface synchronously from repository and
// manager calls and are never retried.
var (
	ErrConnectionNotFound = errors.New("connection not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrSelfConnection     = errors.New("cannot send a connection request to yourself")
	ErrConnectionExists   = errors.New("a connection already exists for this pair")
	ErrNotRetryable       = errors.New("connection is not in a failed state")
)
