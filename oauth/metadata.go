// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"fmt"
	"net/url"

	"github.com/JamieScanlon/agentkit-go/resource"
)

// ProtectedResourceMetadata is the OAuth 2.0 Protected Resource Metadata
// document per RFC 9728. It is what an MCP server publishes at the
// well-known metadata URL so clients can discover its authorization
// servers before requesting a token for it.
type ProtectedResourceMetadata struct {
	// Resource is the protected resource's canonical resource identifier
	// (REQUIRED per RFC 9728).
	Resource string `json:"resource" yaml:"resource"`

	// AuthorizationServers lists issuer identifiers of authorization
	// servers that can issue tokens for this resource (OPTIONAL).
	AuthorizationServers []string `json:"authorization_servers,omitempty" yaml:"authorization_servers,omitempty"`

	// JWKSURI is the URL of the resource's JSON Web Key Set (OPTIONAL).
	JWKSURI string `json:"jwks_uri,omitempty" yaml:"jwks_uri,omitempty"`

	// ScopesSupported lists scope values used in authorization requests
	// for this resource (RECOMMENDED).
	ScopesSupported []string `json:"scopes_supported,omitempty" yaml:"scopes_supported,omitempty"`

	// BearerMethodsSupported lists the supported methods of sending a
	// bearer token (OPTIONAL); values are "header", "body", and "query".
	BearerMethodsSupported []string `json:"bearer_methods_supported,omitempty" yaml:"bearer_methods_supported,omitempty"`

	// ResourceName is a human-readable name for the resource (RECOMMENDED).
	ResourceName string `json:"resource_name,omitempty" yaml:"resource_name,omitempty"`

	// ResourceDocumentation is a URL with developer documentation (OPTIONAL).
	ResourceDocumentation string `json:"resource_documentation,omitempty" yaml:"resource_documentation,omitempty"`
}

// Validate performs semantic validation on the metadata document.
//
// The resource field must be present and already in RFC 8707 canonical
// form; every authorization server entry must be a valid URI.
func (m *ProtectedResourceMetadata) Validate() error {
	if m.Resource == "" {
		return ErrMissingResource
	}

	canonical, err := resource.Canonicalize(m.Resource)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceNotCanonical, err)
	}
	if canonical != m.Resource {
		return fmt.Errorf("%w: %q canonicalizes to %q", ErrResourceNotCanonical, m.Resource, canonical)
	}

	for _, issuer := range m.AuthorizationServers {
		if !resource.IsValid(issuer) {
			return fmt.Errorf("%w: %q", ErrInvalidAuthorizationServer, issuer)
		}
	}
	return nil
}

// MetadataURL derives the RFC 9728 well-known metadata URL for a resource.
//
// Per RFC 9728 Section 3.1, the well-known path is inserted between the
// authority and the resource's path component:
//
//	https://mcp.example.com/mcp
//	  -> https://mcp.example.com/.well-known/oauth-protected-resource/mcp
//
// The input is canonicalized first, so any input Canonicalize accepts is
// accepted here. A query component, if present, is not part of the
// metadata location and is dropped.
func MetadataURL(resourceURI string) (string, error) {
	canonical, err := resource.Canonicalize(resourceURI)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(canonical)
	if err != nil {
		return "", &resource.CanonicalizationError{Reason: err.Error()}
	}
	u.Path = WellKnownOAuthResourcePath + u.Path
	u.RawQuery = ""
	return u.String(), nil
}
