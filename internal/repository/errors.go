// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values let handlers distinguish between
// failure scenarios: a duplicate signup becomes a redirect back to the form
// with a notice, while anything else is treated as a store failure.
package repository

import "errors"

// ErrEmailExists is returned when an account with the requested email is
// already registered.  Handlers translate this into the "Email already
// registered!" notice rather than a generic error.  It is raised both by the
// pre-insert existence check and by the database's unique constraint, so the
// race between two concurrent signups still surfaces as a duplicate.
var ErrEmailExists = errors.New("email already exists")
