// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

// Package oauth provides the RFC-defined types and validation utilities an
// MCP client or server needs around resource indicators: RFC 9728 OAuth
// Protected Resource Metadata, the WWW-Authenticate Bearer challenge that
// advertises it, and redirect URI validation per RFC 6749 and RFC 8252.
//
// # Protected Resource Metadata
//
// A protected resource such as an MCP server publishes an RFC 9728
// metadata document at a well-known URL derived from its canonical
// resource URI:
//
//	meta := oauth.ProtectedResourceMetadata{
//		Resource:             "https://mcp.example.com/mcp",
//		AuthorizationServers: []string{"https://auth.example.com"},
//	}
//	if err := meta.Validate(); err != nil {
//		// Resource missing, not canonical, or bad issuer entries
//	}
//
// MetadataURL derives the well-known document URL for a resource, and
// ValidateMetadataBytes checks a raw document against the embedded JSON
// schema before use.
//
// # Bearer Challenges
//
// When a request arrives without a token, the resource answers 401 with a
// challenge pointing at its metadata (RFC 9728 Section 5.1):
//
//	c := oauth.BearerChallenge{
//		Realm:            "mcp-server",
//		ResourceMetadata: "https://mcp.example.com/.well-known/oauth-protected-resource/mcp",
//	}
//	w.Header().Set("WWW-Authenticate", c.String())
//
// ParseBearerChallenge is the client-side inverse.
//
// # Redirect URI Validation
//
// ValidateRedirectURI applies RFC-compliant checks with a configurable
// scheme policy:
//
//	// https and http-loopback only
//	err := oauth.ValidateRedirectURI("https://example.com/callback", oauth.RedirectURIPolicyStrict)
//
//	// additionally allow private-use schemes for native apps
//	err := oauth.ValidateRedirectURI("myapp://callback", oauth.RedirectURIPolicyAllowPrivateSchemes)
package oauth
