package repository

import "errors"

// ErrNotFound is returned when no row or entry exists for the requested id.
var ErrNotFound = errors.New("not found")
