// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type SessionValidatorInterface interface {
	Validate(ctx context.Context, sessionID string) (*types.Session, *types.Principal, error)
}

type CSRFVerifierInterface interface {
	Verify(ctx context.Context, sessionID, token string) (bool, error)
}

type RoleResolverInterface interface {
	RolesForPrincipal(ctx context.Context, principalID string) (map[string]*types.Role, error)
}

type GateInterface interface {
	Authorize(ctx context.Context, sessionID, targetTenantID, csrfToken string, mutating bool) (*Decision, error)
	ScopeResource(decision *Decision, resourceTenantID string) error
}
