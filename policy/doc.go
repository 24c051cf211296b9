// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

// Package policy layers caller-defined acceptance rules above the resource
// canonicalizer using CEL expressions.
//
// The canonicalizer itself accepts any scheme, as RFC 8707 does not
// restrict them. Deployments that want a stricter posture, such as an
// https-only allow-list, express it as a policy instead of changing the
// canonicalizer's contract:
//
//	p, err := policy.New(`scheme == "https" && host.endsWith(".example.com")`)
//	if err != nil {
//		// expression did not parse or type-check
//	}
//	ok, err := p.Allow("HTTPS://MCP.EXAMPLE.COM/mcp")
//
// Expressions are evaluated over the components of the canonical form of
// the URI: string variables scheme, host, port, path, and query. Allow
// canonicalizes its input first, so invalid URIs fail with the resource
// package's error taxonomy rather than evaluating.
package policy
