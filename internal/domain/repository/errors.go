// Package repository defines the interfaces for the persistence layer.
package repository

import "allserve/internal/errors"

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")
