package script

import "errors"

// Common errors returned by Repository operations. These are the
// recoverable, user-facing conditions; anything else is an I/O failure
// wrapped in a RepositoryError.
var (
	// ErrExists is returned when creating a script that is already present
	ErrExists = errors.New("script already exists")

	// ErrNotFound is returned when the named script is not present
	ErrNotFound = errors.New("script not found")

	// ErrInvalidName is returned for names that can never identify a script
	ErrInvalidName = errors.New("invalid script name")
)

// RepositoryError wraps an I/O error with the operation and script name
// that caused it.
type RepositoryError struct {
	// Op is the operation that failed (e.g. "create", "trash", "run")
	Op string

	// Name is the script name involved, if any
	Name string

	// Err is the underlying error
	Err error
}

func (e *RepositoryError) Error() string {
	if e.Name == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsExists returns true if the error is ErrExists
func IsExists(err error) bool {
	return errors.Is(err, ErrExists)
}

// IsInvalidName returns true if the error is ErrInvalidName
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrInvalidName)
}
