package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgInvalidStat = "invalid stat"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidStat is returned when a stat name is not one of the six character stats
	ErrInvalidStat = errors.New(ErrMsgInvalidStat)

	// ErrInvalidCatalog is returned when embedded seed data cannot be decoded or validated
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// ErrInvalidInput is returned when console input cannot be parsed
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
