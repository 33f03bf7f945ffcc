// Package repository wraps the MongoDB collections. Driver errors are translated into
// the sentinels below so callers never import the driver to classify a failure.
package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no document matches an id, slug or identifier.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a unique index (email, name, slug, sku).
var ErrConflict = errors.New("duplicate value")

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
