// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/JamieScanlon/agentkit-go/resource"
)

const (
	// MaxExpressionLength is the maximum accepted policy expression
	// length, bounding compile-time work on untrusted configuration.
	MaxExpressionLength = 10000

	// evalCostLimit bounds runtime evaluation cost per call.
	evalCostLimit = 1000000
)

// The CEL environment is fixed: every policy sees the same five string
// variables derived from the canonical resource URI.
var sharedEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("scheme", cel.StringType),
		cel.Variable("host", cel.StringType),
		cel.Variable("port", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("query", cel.StringType),
	)
})

// Policy is a compiled acceptance rule for canonical resource URIs.
// It is immutable and safe for concurrent use.
type Policy struct {
	source  string
	program cel.Program
}

// New compiles expr into a Policy. The expression must type-check against
// the string variables scheme, host, port, path, and query; compile
// failures return an *ExpressionError.
func New(expr string) (*Policy, error) {
	if len(expr) > MaxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpression, len(expr), MaxExpressionLength)
	}

	celEnv, err := sharedEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := celEnv.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, newExpressionError(expr, issues.Err())
	}

	program, err := celEnv.Program(ast, cel.CostLimit(evalCostLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Policy{source: expr, program: program}, nil
}

// Source returns the policy's expression source string.
func (p *Policy) Source() string {
	return p.source
}

// Allow canonicalizes resourceURI and evaluates the policy against its
// components. Invalid URIs fail with the resource package's error
// taxonomy before any evaluation happens; a policy never sees a
// non-canonical URI.
func (p *Policy) Allow(resourceURI string) (bool, error) {
	canonical, err := resource.Canonicalize(resourceURI)
	if err != nil {
		return false, err
	}

	// The canonical form reparses by construction.
	u, err := url.Parse(canonical)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEvaluation, err)
	}

	out, _, err := p.program.Eval(map[string]any{
		"scheme": u.Scheme,
		"host":   u.Hostname(),
		"port":   u.Port(),
		"path":   u.EscapedPath(),
		"query":  u.RawQuery,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	allowed, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrNotBool, out.Value())
	}
	return allowed, nil
}
