package services

import "errors"

// Failure taxonomy shared by the controllers for status mapping.
var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMixedVendorOrder = errors.New("order spans more than one vendor")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidQuantity  = errors.New("quantity must be positive")

	ErrBadRecipient       = errors.New("exactly one of userId/vendorId must be set")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PersistenceError wraps a failed atomic unit. The transaction was rolled
// back, so a retry is safe.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "persistence failure: " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }
