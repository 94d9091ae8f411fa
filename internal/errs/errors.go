// Package errs defines the error taxonomy shared by the storage and
// service layers. Repositories never swallow storage errors; they wrap
// them here and let the caller decide how to display them.
package errs

import "errors"

// ErrInvalidParticipantType rejects participant types outside
// {Student, Staff} before anything reaches storage.
var ErrInvalidParticipantType = errors.New("participant type must be Student or Staff")

// ErrEventNotFound rejects operations that reference an event id with
// no matching row.
var ErrEventNotFound = errors.New("event not found")

// SchemaError reports a failure while creating or seeding the storage
// schema. It is fatal at startup.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return "schema: " + e.Err.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// StorageError wraps a read or write failure, tagged with the name of
// the offending operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
