// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"fmt"

	"golang.org/x/net/http/httpguts"

	"github.com/JamieScanlon/agentkit-go/resource"
)

// Length limits for header fields, matching common HTTP server limits.
const (
	maxHeaderNameLength  = 256
	maxHeaderValueLength = 8192
)

// ValidateHeaderName checks that name is a valid HTTP header field name
// per RFC 7230: non-empty, within the length limit, and composed only of
// token characters (which also rules out CRLF injection).
func ValidateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("header name cannot be empty")
	}
	if len(name) > maxHeaderNameLength {
		return fmt.Errorf("header name exceeds maximum length of %d bytes", maxHeaderNameLength)
	}
	// Same validation Go's HTTP/2 implementation applies.
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid HTTP header name: contains invalid characters")
	}
	return nil
}

// ValidateHeaderValue checks that value is a valid HTTP header field value
// per RFC 7230: non-empty, within the length limit, and free of control
// characters and CRLF sequences.
func ValidateHeaderValue(value string) error {
	if value == "" {
		return fmt.Errorf("header value cannot be empty")
	}
	if len(value) > maxHeaderValueLength {
		return fmt.Errorf("header value exceeds maximum length of %d bytes", maxHeaderValueLength)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}
	return nil
}

// ValidateResourceURI checks that resourceURI is acceptable as an RFC 8707
// resource indicator: it must canonicalize successfully (scheme and host
// present, no fragment). The returned error, if any, is the resource
// package's own taxonomy and carries the rejection reason.
func ValidateResourceURI(resourceURI string) error {
	_, err := resource.Canonicalize(resourceURI)
	return err
}
