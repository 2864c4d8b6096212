package database

import "errors"

// StorageError wraps a backend failure. ConstraintViolation marks unique
// constraint breaches so repositories can map them to a conflict without
// inspecting driver-specific error text.
type StorageError struct {
	Message             string
	ConstraintViolation bool
	Err                 error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether err stems from a unique constraint
// breach in the active backend.
func IsConstraintViolation(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr) && storageErr.ConstraintViolation
}
