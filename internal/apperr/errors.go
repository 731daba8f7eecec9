package apperr

import "errors"

// Invalid is returned when the input fails client-side validation
// before any request is issued.
var Invalid = errors.New("invalid input")

// NotFound indicates that the requested entity is not present in local state.
var NotFound = errors.New("not found")

// Unauthorized indicates that an operation requires an authenticated
// session and none is available.
var Unauthorized = errors.New("unauthorized")
