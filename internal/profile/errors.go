package profile

import "errors"

// ErrValidation indicates a required input field was missing.
// Contract violation: reject the operation, leave state unchanged.
var ErrValidation = errors.New("missing required field")

// ErrNoActiveProfile indicates a mutation was attempted with no
// profile loaded.
var ErrNoActiveProfile = errors.New("no active profile")
