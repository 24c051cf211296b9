// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/JamieScanlon/agentkit-go/httperr"
	"github.com/JamieScanlon/agentkit-go/logger"
	"github.com/JamieScanlon/agentkit-go/oauth"
	"github.com/JamieScanlon/agentkit-go/recovery"
	"github.com/JamieScanlon/agentkit-go/resource"
)

// authErrorMessage is the JSON-RPC error message for unauthenticated
// requests, kept wire-compatible with the original test script.
const authErrorMessage = "Missing or invalid OAuth authorization"

// server serves the unauthenticated half of the MCP OAuth discovery flow:
// a 401 Bearer challenge on the MCP endpoint and the RFC 9728 metadata
// document it points at.
type server struct {
	cfg         *Config
	resourceURI string
	metadataURL string
}

// newServer derives the server's canonical resource URI and metadata URL
// from the configuration.
func newServer(cfg *Config) (*server, error) {
	resourceURI, err := resource.Canonicalize(fmt.Sprintf("http://127.0.0.1:%d/mcp", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to derive resource URI: %w", err)
	}
	metadataURL, err := oauth.MetadataURL(resourceURI)
	if err != nil {
		return nil, fmt.Errorf("failed to derive metadata URL: %w", err)
	}
	return &server{cfg: cfg, resourceURI: resourceURI, metadataURL: metadataURL}, nil
}

// handler assembles the route table behind the recovery and request-log
// middleware. Patterns are path-only and the handlers check the method
// themselves: a wrong-method request on a known path is a 404, not a 405,
// matching the behavior of the server this one replaces.
func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/mcp", s.handleMCP)
	mux.HandleFunc("/mcp/", s.handleMCP)
	mux.HandleFunc(oauth.WellKnownOAuthResourcePath, s.handleMetadata)
	mux.HandleFunc(oauth.WellKnownOAuthResourcePath+"/mcp", s.handleMetadata)
	return recovery.Middleware(logRequests(mux))
}

// authError builds the 401 error carrying this server's Bearer challenge.
func (s *server) authError() error {
	challenge := oauth.BearerChallenge{
		Realm:            s.cfg.Realm,
		ResourceMetadata: s.metadataURL,
	}
	return httperr.WithChallenge(errors.New(authErrorMessage), challenge.String())
}

// handleMCP rejects every MCP request with a 401 challenge and a JSON-RPC
// error body, mimicking a resource server that requires OAuth.
func (s *server) handleMCP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	err := s.authError()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("WWW-Authenticate", httperr.Challenge(err))
	w.WriteHeader(httperr.Code(err))

	rpcErr := mcp.NewJSONRPCError(mcp.NewRequestId(nil), mcp.INVALID_REQUEST, authErrorMessage, nil)
	if encodeErr := json.NewEncoder(w).Encode(rpcErr); encodeErr != nil {
		logger.Errorw("failed to encode JSON-RPC error body", "error", encodeErr)
	}
}

// handleMetadata serves the RFC 9728 protected resource metadata document.
func (s *server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	meta := oauth.ProtectedResourceMetadata{
		Resource:             s.resourceURI,
		AuthorizationServers: []string{s.cfg.Issuer},
	}
	if err := meta.Validate(); err != nil {
		logger.Errorw("invalid protected resource metadata", "error", err)
		httperr.Write(w, httperr.WithCode(err, http.StatusInternalServerError))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(meta); err != nil {
		logger.Errorw("failed to encode metadata document", "error", err)
	}
}

// logRequests tags each request with a UUID and logs it.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Infow("request",
			"id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)
		next.ServeHTTP(w, r)
	})
}
