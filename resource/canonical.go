// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"net/url"
	"strings"
)

// Default ports elided from canonical form per RFC 8707 Section 2.
const (
	defaultHTTPPort  = "80"
	defaultHTTPSPort = "443"
)

// Canonicalize parses raw and returns its RFC 8707 canonical form.
//
// The input must have a scheme and a non-empty host and must not carry a
// fragment. Scheme and host are lowercased, the scheme's default port is
// elided, and a single trailing slash is stripped from the path. Path
// casing and the query string are preserved verbatim. Any scheme is
// accepted; see the package documentation for layering scheme policy.
//
// Failures return an *InvalidURIError (or, for the normalization stage,
// a *CanonicalizationError); a failed call never returns a partially
// normalized URI.
func Canonicalize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &InvalidURIError{Reason: "URI is empty"}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", &InvalidURIError{Reason: err.Error()}
	}

	// net/url lowercases the scheme during parsing, so uppercase scheme
	// input is accepted here and already folded.
	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		return "", &InvalidURIError{Reason: "URI must include a scheme (e.g. https://): " + raw}
	}

	// Rejects "https://" and "https:///path", where the authority is empty.
	if u.Host == "" {
		return "", &InvalidURIError{Reason: "URI must include a host: " + raw}
	}

	// RFC 8707 Section 2: the resource parameter must not include a
	// fragment. A bare trailing "#" parses to an empty fragment and is
	// tolerated; any fragment text is not.
	if u.Fragment != "" {
		return "", &InvalidURIError{Reason: "URI must not contain a fragment (#): " + raw}
	}

	port := u.Port()
	host := u.Host
	if port != "" {
		// Keep IPv6 brackets intact rather than using Hostname().
		host = strings.TrimSuffix(host, ":"+port)
	}
	host = strings.ToLower(host)
	if host == "" {
		return "", &InvalidURIError{Reason: "URI must include a host: " + raw}
	}

	if (scheme == "http" && port == defaultHTTPPort) ||
		(scheme == "https" && port == defaultHTTPSPort) {
		port = ""
	}

	// A single trailing slash is not significant for resource identity;
	// this also turns a bare root path into an empty path. Inner slashes
	// and the query string are never touched.
	path := strings.TrimSuffix(u.EscapedPath(), "/")

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	if port != "" {
		b.WriteString(":")
		b.WriteString(port)
	}
	b.WriteString(path)
	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	canonical := b.String()

	if _, err := url.Parse(canonical); err != nil {
		return "", &CanonicalizationError{Reason: err.Error()}
	}
	return canonical, nil
}

// IsValid reports whether raw canonicalizes successfully. It is the total,
// boolean counterpart to Canonicalize and never returns an error; callers
// who need the failure reason should call Canonicalize directly.
func IsValid(raw string) bool {
	_, err := Canonicalize(raw)
	return err == nil
}

// EncodeParameter percent-encodes an already-canonical URI for use as an
// OAuth "resource" form or query parameter value. It does not re-validate
// its input. The encoding is reversible under standard percent-decoding.
func EncodeParameter(canonical string) string {
	return url.QueryEscape(canonical)
}

// FromURL derives the canonical resource URI for an already-parsed URL,
// typically one naming an MCP server endpoint. It is equivalent to calling
// Canonicalize on the URL's string form, including all normalization rules.
func FromURL(u *url.URL) (string, error) {
	if u == nil {
		return "", &InvalidURIError{Reason: "URL is nil"}
	}
	return Canonicalize(u.String())
}
