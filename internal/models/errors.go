package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core model operations. They are raised at the point
// of violation and abort the enclosing transaction; nothing in this package
// retries or swallows them.
var (
	// ErrKeyNotFound is returned by PropertyStore delete/pop on an absent key.
	ErrKeyNotFound = errors.New("property key not found")
	// ErrInvalidArgument is returned when a bulk property replace is given
	// something other than a string-keyed mapping.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned by lookups that resolve no row. 404-style
	// handling belongs to the caller.
	ErrNotFound = errors.New("not found")
	// ErrUnknownType is returned when a node type tag has no registered variant.
	ErrUnknownType = errors.New("unknown node type")
)

// UniquenessError reports a duplicate (name, scope) pair for any of the
// scoped entities, or a duplicate (name, node) pair for a property.
type UniquenessError struct {
	Entity string // "website", "hostname", "folder", "node", "property"
	Name   string
	Scope  string // describes the parent scope, empty for global names
}

func (e *UniquenessError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("%s name %q already exists", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s name %q already exists in %s", e.Entity, e.Name, e.Scope)
}

// IsUniqueness reports whether err is a UniquenessError.
func IsUniqueness(err error) bool {
	var ue *UniquenessError
	return errors.As(err, &ue)
}
