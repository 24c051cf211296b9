// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"net/http"
)

// CodedError wraps an error with the HTTP status code it should produce,
// and optionally the WWW-Authenticate challenge to send with a 401.
type CodedError struct {
	err       error
	code      int
	challenge string
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps err with an HTTP status code. Returns nil if err is nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// WithChallenge wraps err as a 401 Unauthorized carrying a
// WWW-Authenticate challenge value. Returns nil if err is nil.
func WithChallenge(err error, challenge string) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: http.StatusUnauthorized, challenge: challenge}
}

// New creates an error with the given message and HTTP status code.
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}

// Code extracts the HTTP status code from an error chain. An error with no
// CodedError in its chain maps to 500; a nil error maps to 200.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return http.StatusInternalServerError
}

// Challenge extracts the WWW-Authenticate challenge from an error chain,
// or "" when none is attached.
func Challenge(err error) string {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.challenge
	}
	return ""
}

// Write renders err as a plain-text HTTP response using the code and
// challenge carried in its chain.
func Write(w http.ResponseWriter, err error) {
	if challenge := Challenge(err); challenge != "" {
		w.Header().Set("WWW-Authenticate", challenge)
	}
	http.Error(w, err.Error(), Code(err))
}
