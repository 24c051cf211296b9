// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamieScanlon/agentkit-go/oauth"
)

func testServer(t *testing.T) *server {
	t.Helper()
	s, err := newServer(&Config{Port: 8765, Realm: "mcp-server", Issuer: "https://auth.example.com"})
	require.NoError(t, err)
	return s
}

func TestServerDerivedURIs(t *testing.T) {
	t.Parallel()

	s := testServer(t)
	assert.Equal(t, "http://127.0.0.1:8765/mcp", s.resourceURI)
	assert.Equal(t, "http://127.0.0.1:8765/.well-known/oauth-protected-resource/mcp", s.metadataURL)
}

func TestMCPEndpointChallenges(t *testing.T) {
	t.Parallel()

	handler := testServer(t).handler()

	for _, path := range []string{"/mcp", "/mcp/tools"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			challenge, err := oauth.ParseBearerChallenge(rec.Header().Get("WWW-Authenticate"))
			require.NoError(t, err)
			assert.Equal(t, "mcp-server", challenge.Realm)
			assert.Equal(t, "http://127.0.0.1:8765/.well-known/oauth-protected-resource/mcp", challenge.ResourceMetadata)

			var body struct {
				JSONRPC string `json:"jsonrpc"`
				ID      any    `json:"id"`
				Error   struct {
					Code    int    `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "2.0", body.JSONRPC)
			assert.Nil(t, body.ID)
			assert.Equal(t, -32600, body.Error.Code)
			assert.Equal(t, authErrorMessage, body.Error.Message)
		})
	}
}

func TestMetadataEndpoint(t *testing.T) {
	t.Parallel()

	handler := testServer(t).handler()

	paths := []string{
		oauth.WellKnownOAuthResourcePath,
		oauth.WellKnownOAuthResourcePath + "/mcp",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			require.NoError(t, oauth.ValidateMetadataBytes(rec.Body.Bytes()))

			var meta oauth.ProtectedResourceMetadata
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meta))
			assert.Equal(t, "http://127.0.0.1:8765/mcp", meta.Resource)
			assert.Equal(t, []string{"https://auth.example.com"}, meta.AuthorizationServers)
			assert.NoError(t, meta.Validate())
		})
	}
}

// Everything outside POST /mcp and the well-known GETs is a plain 404,
// including wrong-method requests on known paths.
func TestUnknownRoutesAnswer404(t *testing.T) {
	t.Parallel()

	handler := testServer(t).handler()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodPost, "/other"},
		{http.MethodGet, "/mcp"},
		{http.MethodGet, "/mcp/tools"},
		{http.MethodDelete, "/mcp"},
		{http.MethodPost, oauth.WellKnownOAuthResourcePath},
		{http.MethodPost, oauth.WellKnownOAuthResourcePath + "/mcp"},
		{http.MethodGet, oauth.WellKnownOAuthResourcePath + "/other"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}
