package domain

import (
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
)

// Payload fields arrive as `any`: either raw decoded JSON from the boundary
// or values scanned from the database. requiredString/requiredBool enforce
// the construction contract: absent/null -> ShapeError, wrong primitive
// type -> TypeError. Both name the entity being constructed.

func requiredString(entity, field string, v any) (string, error) {
	if v == nil {
		return "", &internal_errors.ShapeError{Entity: entity, Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", &internal_errors.TypeError{Entity: entity, Field: field}
	}
	return s, nil
}

func requiredBool(entity, field string, v any) (bool, error) {
	if v == nil {
		return false, &internal_errors.ShapeError{Entity: entity, Field: field}
	}
	b, ok := v.(bool)
	if !ok {
		return false, &internal_errors.TypeError{Entity: entity, Field: field}
	}
	return b, nil
}
