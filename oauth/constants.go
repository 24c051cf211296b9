// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package oauth

// Well-known endpoint paths as defined by RFC 8414, OpenID Connect
// Discovery 1.0, and RFC 9728.
const (
	// WellKnownOIDCPath is the standard OIDC discovery endpoint path
	// per OpenID Connect Discovery 1.0.
	WellKnownOIDCPath = "/.well-known/openid-configuration"

	// WellKnownOAuthServerPath is the authorization server metadata path
	// per RFC 8414 (OAuth 2.0 Authorization Server Metadata).
	WellKnownOAuthServerPath = "/.well-known/oauth-authorization-server"

	// WellKnownOAuthResourcePath is the RFC 9728 path for OAuth Protected
	// Resource metadata. Per RFC 9728 Section 3, this endpoint and any
	// subpaths under it should be reachable without authentication so
	// discovery can proceed.
	WellKnownOAuthResourcePath = "/.well-known/oauth-protected-resource"
)

// HTTP authentication scheme and challenge parameters (RFC 6750, RFC 9728).
const (
	// BearerScheme is the HTTP authentication scheme for OAuth 2.0 bearer
	// tokens (RFC 6750).
	BearerScheme = "Bearer"

	// ChallengeParamRealm is the protection-space parameter of a Bearer
	// challenge (RFC 7235 Section 2.2).
	ChallengeParamRealm = "realm"

	// ChallengeParamResourceMetadata points a client at the protected
	// resource metadata document (RFC 9728 Section 5.1).
	ChallengeParamResourceMetadata = "resource_metadata"
)

// Token request parameters.
const (
	// ParamResource is the RFC 8707 resource indicator parameter carried
	// in authorization and token requests.
	ParamResource = "resource"
)
