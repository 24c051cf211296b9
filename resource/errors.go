// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package resource

import "errors"

// Sentinel errors for use with errors.Is. The concrete error values carry
// a human-readable reason; these sentinels identify the failure stage.
var (
	// ErrInvalidURI indicates input that is malformed or structurally
	// disallowed as a resource URI: empty input, missing scheme or host,
	// a fragment component, or an unparseable string.
	ErrInvalidURI = errors.New("invalid resource URI")

	// ErrCanonicalization indicates input that parsed but could not be
	// normalized into canonical form.
	ErrCanonicalization = errors.New("failed to canonicalize URI")
)

// InvalidURIError reports input rejected before normalization.
type InvalidURIError struct {
	// Reason describes why the input was rejected. Always non-empty.
	Reason string
}

// Error implements the error interface.
func (e *InvalidURIError) Error() string {
	return "Invalid resource URI: " + e.Reason
}

// Unwrap returns ErrInvalidURI for errors.Is compatibility.
func (e *InvalidURIError) Unwrap() error {
	return ErrInvalidURI
}

// CanonicalizationError reports input that parsed but failed during the
// normalization stage.
type CanonicalizationError struct {
	// Reason describes the normalization failure. Always non-empty.
	Reason string
}

// Error implements the error interface.
func (e *CanonicalizationError) Error() string {
	return "Failed to canonicalize URI: " + e.Reason
}

// Unwrap returns ErrCanonicalization for errors.Is compatibility.
func (e *CanonicalizationError) Unwrap() error {
	return ErrCanonicalization
}
