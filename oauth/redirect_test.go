// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRedirectURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		uri       string
		strictOK  bool
		privateOK bool
	}{
		// https works under both policies
		{name: "https", uri: "https://example.com/callback", strictOK: true, privateOK: true},
		{name: "https with port", uri: "https://example.com:8443/callback", strictOK: true, privateOK: true},
		{name: "https with query", uri: "https://example.com/callback?state=abc", strictOK: true, privateOK: true},

		// http loopback works under both policies (RFC 8252)
		{name: "http localhost", uri: "http://localhost:8080/callback", strictOK: true, privateOK: true},
		{name: "http 127.0.0.1", uri: "http://127.0.0.1:9090/callback", strictOK: true, privateOK: true},

		// private-use schemes need the relaxed policy (RFC 8252 Section 7.1)
		{name: "cursor scheme", uri: "cursor://callback", privateOK: true},
		{name: "vscode scheme", uri: "vscode://callback/auth", privateOK: true},

		// rejected under both policies
		{name: "http non-loopback", uri: "http://example.com/callback"},
		{name: "fragment", uri: "https://example.com/callback#section"},
		{name: "relative", uri: "/callback"},
		{name: "too long", uri: "https://example.com/" + strings.Repeat("a", MaxRedirectURILength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			strictErr := ValidateRedirectURI(tt.uri, RedirectURIPolicyStrict)
			if tt.strictOK {
				assert.NoError(t, strictErr)
			} else {
				assert.Error(t, strictErr)
			}

			privateErr := ValidateRedirectURI(tt.uri, RedirectURIPolicyAllowPrivateSchemes)
			if tt.privateOK {
				assert.NoError(t, privateErr)
			} else {
				assert.Error(t, privateErr)
			}
		})
	}
}

func TestValidateRedirectURIUnknownPolicy(t *testing.T) {
	t.Parallel()

	err := ValidateRedirectURI("https://example.com/callback", RedirectURIPolicy(99))
	assert.ErrorContains(t, err, "unknown redirect URI policy")
}

func TestRedirectURIPolicyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "strict", RedirectURIPolicyStrict.String())
	assert.Equal(t, "allow-private-schemes", RedirectURIPolicyAllowPrivateSchemes.String())
	assert.Equal(t, "unknown(99)", RedirectURIPolicy(99).String())
}
