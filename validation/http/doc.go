// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides security-focused validation for HTTP headers and
resource URIs.

Header name and value validation guards against CRLF injection and control
characters when headers such as WWW-Authenticate are assembled from
configuration or remote input:

	if err := http.ValidateHeaderName("WWW-Authenticate"); err != nil {
		// invalid header name
	}
	if err := http.ValidateHeaderValue(challenge); err != nil {
		// value would corrupt the header block
	}

ValidateResourceURI checks that a URI is acceptable as an RFC 8707
resource indicator. It delegates to the resource package's canonicalizer,
so the two can never disagree about what a valid resource URI is.
*/
package http
