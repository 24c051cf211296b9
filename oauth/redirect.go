// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ory/fosite"
)

// MaxRedirectURILength caps the length of a redirect URI accepted for
// validation, bounding the work done by URI parsing.
const MaxRedirectURILength = 2048

// RedirectURIPolicy selects which URI schemes ValidateRedirectURI accepts.
type RedirectURIPolicy int

const (
	// RedirectURIPolicyStrict accepts only https and http-loopback
	// redirect URIs, per the RFC 8252 Section 8.4 recommendations.
	// Appropriate for dynamically registered clients.
	RedirectURIPolicyStrict RedirectURIPolicy = iota

	// RedirectURIPolicyAllowPrivateSchemes additionally accepts
	// private-use URI schemes (cursor://, vscode://, ...) per RFC 8252
	// Section 7.1. Appropriate for pre-registered native applications.
	RedirectURIPolicyAllowPrivateSchemes
)

// String returns the policy name for logs and error messages.
func (p RedirectURIPolicy) String() string {
	switch p {
	case RedirectURIPolicyStrict:
		return "strict"
	case RedirectURIPolicyAllowPrivateSchemes:
		return "allow-private-schemes"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ValidateRedirectURI validates a redirect URI per RFC 6749 Section 3.1.2
// and RFC 8252. The URI must be absolute, carry no fragment, and use a
// scheme the policy permits.
func ValidateRedirectURI(uri string, policy RedirectURIPolicy) error {
	if len(uri) > MaxRedirectURILength {
		return fmt.Errorf("redirect_uri too long (maximum %d characters)", MaxRedirectURILength)
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid redirect_uri format: %w", err)
	}

	// RFC 6749 Section 3.1.2: absolute URI, no fragment.
	if !fosite.IsValidRedirectURI(parsed) {
		return fmt.Errorf("redirect_uri must be an absolute URI without a fragment")
	}

	switch policy {
	case RedirectURIPolicyStrict:
		if !fosite.IsRedirectURISecureStrict(context.Background(), parsed) {
			return fmt.Errorf("redirect_uri must use http (for loopback) or https scheme")
		}
	case RedirectURIPolicyAllowPrivateSchemes:
		if !fosite.IsRedirectURISecure(context.Background(), parsed) {
			return fmt.Errorf("redirect_uri must use a secure scheme (https, http for loopback, or a private-use scheme)")
		}
	default:
		return fmt.Errorf("unknown redirect URI policy: %s", policy)
	}

	return nil
}
