// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides an HTTP middleware that converts handler
// panics into 500 responses and logs the panic value with its stack trace,
// keeping a single misbehaving request from taking the server down.
package recovery
