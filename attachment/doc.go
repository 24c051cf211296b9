// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

// Package attachment models a file attachment carried inside LLM response
// metadata: an optional name, MIME type, base64-encoded payload, and URL.
//
// Decoding is deliberately permissive. An attachment is decoded from a
// generic JSON value (the result of unmarshalling into any); individual
// fields that are missing or malformed are simply left absent, and only a
// non-object top-level value fails the decode:
//
//	a, ok := attachment.Decode(value)
//	if !ok {
//		// value was not a JSON object
//	}
//
// Response.Files applies the same permissiveness to the "files" array in
// response metadata, skipping elements that do not decode and preserving
// the order of those that do.
package attachment
