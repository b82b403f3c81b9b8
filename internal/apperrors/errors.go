package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the user is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrMalformedRecord indicates that a transaction record violates its
// invariants (non-positive amount, unknown kind, empty category) and cannot
// be aggregated. The whole aggregation call fails; callers wanting
// skip-and-continue semantics must filter their input first.
var ErrMalformedRecord = errors.New("malformed transaction record")
