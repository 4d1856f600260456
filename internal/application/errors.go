package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound means an authenticated principal has no matching user
	// row. That is a consistency fault between the auth layer and the user
	// store, not a caller error.
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrEmailTaken      = errors.New("email already registered")
	ErrExpenseNotFound = errors.New("expense not found")
)

// ValidationError reports field-level input problems. Nothing is written to
// the store when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
