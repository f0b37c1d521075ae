// Package repository is the in-memory directory of registry entities. Each
// repository owns its entities for the process lifetime; there is no
// persistence layer behind it.
package repository

import "errors"

// ErrNotFound is returned by lookups that miss.
var ErrNotFound = errors.New("not found")
