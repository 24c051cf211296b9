// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

// Package resource implements RFC 8707 (Resource Indicators for OAuth 2.0)
// canonical resource URIs. Given a string or URL naming a protected resource,
// such as an MCP server endpoint, it produces the canonical string form
// suitable for the OAuth "resource" token request parameter, and validates
// that a URI conforms to the RFC's canonical-form rules.
//
// # Canonical Form
//
// A canonical resource URI has a lowercase scheme and host, no fragment,
// no default port (80 for http, 443 for https), and no trailing slash on a
// bare or root-only path. Path casing and the query string are preserved
// as given:
//
//	canonical, err := resource.Canonicalize("HTTPS://MCP.EXAMPLE.COM:443/MCP")
//	// canonical == "https://mcp.example.com/MCP"
//
// Canonicalize does not restrict schemes: "ftp://host" is syntactically a
// valid resource URI at this layer. Callers wanting an http/https-only or
// similar policy should layer one above the canonicalizer (see the policy
// package) rather than rely on this package rejecting schemes.
//
// # Validation
//
// IsValid is the boolean counterpart to Canonicalize for callers who do
// not need the failure reason:
//
//	if resource.IsValid("https://mcp.example.com/mcp") {
//		// safe to use as a resource indicator
//	}
//
// All functions in this package are pure: no I/O, no shared state, safe
// for unrestricted concurrent use.
package resource
