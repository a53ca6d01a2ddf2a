package repositories

import (
	"errors"
)

// Set of error values shared by the repositories.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidRecord = errors.New("invalid record")
	ErrAlreadyExists = errors.New("record already exists")
)
