// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

// Package env abstracts environment variable access behind a small Reader
// interface so packages that consult the environment (logger setup, server
// configuration) can be tested with a MapReader instead of mutating the
// process environment.
package env
