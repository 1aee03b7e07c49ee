// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubjectIDCtxKey is the key used to store the authenticated subject
// identifier in the context. The value is put there by the auth middleware
// after the session token has been verified.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SubjectIDCtxKey, "0190e7c4-...")
var SubjectIDCtxKey = contextKey("subjectID")

// GetSubjectIDFromContext retrieves the subject identifier from the context.
//
// Returns the subject ID and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetSubjectIDFromContext(ctx context.Context) (string, bool) {
	subjectID, ok := ctx.Value(SubjectIDCtxKey).(string)
	if !ok || subjectID == "" {
		return "", false
	}
	return subjectID, true
}

// WithSubjectID returns a copy of ctx carrying subjectID.
func WithSubjectID(ctx context.Context, subjectID string) context.Context {
	return context.WithValue(ctx, SubjectIDCtxKey, subjectID)
}
