package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error categories. Every service error wraps exactly one of these so
// handlers can map it to an HTTP status with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("invalid credentials")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func notFoundError(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func conflictError(msg string) error {
	return fmt.Errorf("%s %w", msg, ErrConflict)
}

func forbiddenError(action string) error {
	return fmt.Errorf("%w: only the owner can %s", ErrForbidden, action)
}

// parseID validates a caller-supplied identifier before it reaches any query.
// The label names the offending field in the error message.
func parseID(raw, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidIdentifier, label)
	}
	return id, nil
}

// checkOwnership guards mutations: only the owner of an entity may perform
// them, regardless of the entity's visibility.
func checkOwnership(ownerID, principal uuid.UUID, action string) error {
	if ownerID != principal {
		return forbiddenError(action)
	}
	return nil
}
