// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"fmt"
	"strings"

	httpvalidation "github.com/JamieScanlon/agentkit-go/validation/http"
)

// BearerChallenge is the WWW-Authenticate challenge a protected resource
// returns alongside a 401 to start OAuth discovery (RFC 6750 Section 3,
// RFC 9728 Section 5.1).
type BearerChallenge struct {
	// Realm is the protection space name, e.g. "mcp-server".
	Realm string

	// ResourceMetadata is the URL of the resource's RFC 9728 metadata
	// document.
	ResourceMetadata string
}

// String renders the challenge as a WWW-Authenticate header value:
//
//	Bearer realm="mcp-server", resource_metadata="https://..."
//
// Empty parameters are omitted. Use Validate before emitting the header
// when the parameter values come from untrusted input.
func (c *BearerChallenge) String() string {
	params := make([]string, 0, 2)
	if c.Realm != "" {
		params = append(params, fmt.Sprintf("%s=%q", ChallengeParamRealm, c.Realm))
	}
	if c.ResourceMetadata != "" {
		params = append(params, fmt.Sprintf("%s=%q", ChallengeParamResourceMetadata, c.ResourceMetadata))
	}
	if len(params) == 0 {
		return BearerScheme
	}
	return BearerScheme + " " + strings.Join(params, ", ")
}

// Validate checks that the rendered challenge is a safe HTTP header value
// and that the parameter values do not break quoted-string framing.
func (c *BearerChallenge) Validate() error {
	for name, value := range map[string]string{
		ChallengeParamRealm:            c.Realm,
		ChallengeParamResourceMetadata: c.ResourceMetadata,
	} {
		if strings.ContainsAny(value, `"\`) {
			return fmt.Errorf("challenge parameter %s must not contain quotes or backslashes", name)
		}
	}
	return httpvalidation.ValidateHeaderValue(c.String())
}

// ParseBearerChallenge parses a WWW-Authenticate header value into a
// BearerChallenge. It returns ErrNotBearerChallenge for other
// authentication schemes. Parameters other than realm and
// resource_metadata are ignored.
func ParseBearerChallenge(header string) (*BearerChallenge, error) {
	header = strings.TrimSpace(header)
	scheme, rest, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, BearerScheme) {
		return nil, fmt.Errorf("%w: %q", ErrNotBearerChallenge, header)
	}

	c := &BearerChallenge{}
	for _, param := range splitChallengeParams(rest) {
		name, value, ok := strings.Cut(param, "=")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = unquote(strings.TrimSpace(value))
		switch name {
		case ChallengeParamRealm:
			c.Realm = value
		case ChallengeParamResourceMetadata:
			c.ResourceMetadata = value
		}
	}
	return c, nil
}

// splitChallengeParams splits the auth-param list on commas that fall
// outside quoted strings.
func splitChallengeParams(s string) []string {
	var params []string
	var start int
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				params = append(params, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if trailing := strings.TrimSpace(s[start:]); trailing != "" {
		params = append(params, trailing)
	}
	return params
}

// unquote strips one layer of double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
