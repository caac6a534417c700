package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller does not own the resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrUnauthorized will throw if the request carries no valid credentials
	ErrUnauthorized = errors.New("missing authentication")
	// ErrCacheMiss is returned by caches when the key is absent
	ErrCacheMiss = errors.New("cache miss")
)

// ValidationKind tells why a payload was rejected.
type ValidationKind int8

const (
	MissingProperty ValidationKind = iota + 1
	TypeMismatch
)

func (k ValidationKind) String() string {
	switch k {
	case MissingProperty:
		return "missing property"
	case TypeMismatch:
		return "type mismatch"
	default:
		return "invalid"
	}
}

// ValidationError is returned when a payload cannot be turned into an entity.
type ValidationError struct {
	Entity   string
	Property string
	Kind     ValidationKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingProperty:
		return fmt.Sprintf("cannot create new %s: required property %q is missing", e.Entity, e.Property)
	case TypeMismatch:
		return fmt.Sprintf("cannot create new %s: property %q has the wrong type", e.Entity, e.Property)
	default:
		return fmt.Sprintf("cannot create new %s: property %q is invalid", e.Entity, e.Property)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrBadParamInput
}

// NotFoundError names the resource that does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ForbiddenError is returned when the caller does not own the resource it mutates.
type ForbiddenError struct {
	Resource string
}

func (e *ForbiddenError) Error() string {
	return "not allowed to access this " + e.Resource
}

func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

const (
	ResourceThread  = "thread"
	ResourceComment = "comment"
	ResourceReply   = "reply"
)
