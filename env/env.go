// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package env

import "os"

// Reader defines an interface for environment variable access.
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader implements Reader over a fixed map. Missing keys read as "",
// matching os.Getenv. Intended for tests.
type MapReader map[string]string

// Getenv returns the mapped value for key, or "" when absent.
func (m MapReader) Getenv(key string) string {
	return m[key]
}
