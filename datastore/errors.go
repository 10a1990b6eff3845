package datastore

import "errors"

// ErrNotFound is returned when a record does not exist in a repository.
var ErrNotFound = errors.New("not found")
