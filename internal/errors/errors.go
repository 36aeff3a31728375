package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFoundError marks a lookup for a resource that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError marks a mutation attempted by a non-owner.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ShapeError marks a payload missing a required property.
type ShapeError struct {
	Entity string
	Field  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: missing required property %q", e.Entity, e.Field)
}

// TypeError marks a payload property of the wrong data type.
type TypeError struct {
	Entity string
	Field  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: property %q has the wrong data type", e.Entity, e.Field)
}

// ValidationError marks a payload that is well formed but violates a
// business rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether any error in err's chain matches the target type.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	return Is[*NotFoundError](err)
}

// StatusCode maps an error to the HTTP status code it should surface as.
func StatusCode(err error) int {
	var withStatus *ErrorWithStatusCode
	if errors.As(err, &withStatus) {
		return withStatus.StatusCode
	}

	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case Is[*AuthorizationError](err):
		return http.StatusForbidden
	case Is[*ShapeError](err), Is[*TypeError](err), Is[*ValidationError](err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
