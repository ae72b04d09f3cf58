// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var decisionContextKey = contextKey{}

// WithDecision returns a new context carrying the admission decision.
func WithDecision(ctx context.Context, decision *Decision) context.Context {
	return context.WithValue(ctx, decisionContextKey, decision)
}

// GetDecision retrieves the admission decision from the context.
// Returns nil and false if no decision is present.
func GetDecision(ctx context.Context) (*Decision, bool) {
	decision, ok := ctx.Value(decisionContextKey).(*Decision)
	return decision, ok
}
