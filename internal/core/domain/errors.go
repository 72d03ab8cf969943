package domain

import "errors"

// Storage-level errors. Repositories translate driver failures into these so the
// rest of the system never inspects driver error codes.
var (
	// ErrUnavailable signals a transient store failure: connectivity was lost and
	// the one allowed reconnect-retry also failed. Callers surface a generic
	// "try again later" message rather than driver detail.
	ErrUnavailable = errors.New("store temporarily unavailable")
	// ErrDuplicate signals a uniqueness constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey signals a foreign key constraint violation.
	ErrForeignKey = errors.New("invalid reference")
)

// Business and authorization errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSelfDeletion       = errors.New("cannot delete own account")
	ErrForbidden          = errors.New("access forbidden")
)
