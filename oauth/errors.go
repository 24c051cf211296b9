// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import "errors"

// Validation errors for protected resource metadata and challenges.
var (
	// ErrMissingResource indicates the required resource field is missing
	// from the metadata document.
	ErrMissingResource = errors.New("missing resource")

	// ErrResourceNotCanonical indicates the resource field is present but
	// is not in RFC 8707 canonical form.
	ErrResourceNotCanonical = errors.New("resource is not in canonical form")

	// ErrInvalidAuthorizationServer indicates an authorization_servers
	// entry is not a valid issuer URI.
	ErrInvalidAuthorizationServer = errors.New("invalid authorization server issuer")

	// ErrNotBearerChallenge indicates a WWW-Authenticate value that does
	// not use the Bearer scheme.
	ErrNotBearerChallenge = errors.New("not a Bearer challenge")
)
