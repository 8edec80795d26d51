package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidExpression means the buffer holds a character outside
	// the evaluator's allow-list.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrEvaluation covers syntax errors and non-finite results.
	ErrEvaluation = errors.New("evaluation failure")

	ErrUnknownKey = errors.New("unknown key")
)
