// Package repository defines error types that are reused across
// repositories so handlers can tell failure scenarios apart.
package repository

import "errors"

// ErrInvalidQuery is returned when a PairQuery cannot be stored as given,
// e.g. an empty mode or a negative result count.  Consumers should drop
// the message rather than retry it.
var ErrInvalidQuery = errors.New("invalid pair query")
