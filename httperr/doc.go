// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr carries HTTP response metadata through error chains.

Handlers deep in a call stack can attach the status code (and, for 401s,
the WWW-Authenticate challenge) their failure should produce, and the
outermost HTTP layer decides in one place how to render it:

	func lookup(id string) error {
		return httperr.New("no such resource", http.StatusNotFound)
	}

	func requireToken(r *http.Request, challenge string) error {
		if r.Header.Get("Authorization") == "" {
			return httperr.WithChallenge(errors.New("missing or invalid OAuth authorization"), challenge)
		}
		return nil
	}

	// in the handler
	if err := serve(r); err != nil {
		httperr.Write(w, err)
		return
	}

Errors wrapped here remain compatible with errors.Is and errors.As; an
error without a code renders as 500.
*/
package httperr
