// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"errors"
	"fmt"
)

// Sentinel errors for policy expression handling.
var (
	// ErrExpression is returned when a policy expression fails parsing or
	// type checking.
	ErrExpression = errors.New("policy expression check failed")

	// ErrEvaluation is returned when evaluating a policy fails at runtime.
	ErrEvaluation = errors.New("policy evaluation failed")

	// ErrNotBool is returned when a policy expression evaluates to a
	// non-boolean result.
	ErrNotBool = errors.New("policy expression did not evaluate to a boolean")
)

// ExpressionError reports a compile-stage failure with the offending
// expression source attached.
type ExpressionError struct {
	// Source is the expression that failed to compile.
	Source string

	original error
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	return fmt.Sprintf("policy expression %q: %s", e.Source, e.original)
}

// Unwrap returns the underlying error.
func (e *ExpressionError) Unwrap() error {
	return e.original
}

func newExpressionError(source string, err error) error {
	return &ExpressionError{
		Source:   source,
		original: fmt.Errorf("%w: %w", ErrExpression, err),
	}
}
