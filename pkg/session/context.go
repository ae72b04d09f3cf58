// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

// CookieName is the cookie carrying the opaque session ID.
const CookieName = "session_id"

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal *types.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns nil and false if no principal is present.
func GetPrincipal(ctx context.Context) (*types.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(*types.Principal)
	return principal, ok
}
