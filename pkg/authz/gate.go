// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authz composes session validation, CSRF verification and role
// resolution into a single request admission decision.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
	"github.com/canonical/account-service/pkg/session"
)

// Decision is the admitted identity and its role in the target tenant.
type Decision struct {
	Principal *types.Principal
	Session   *types.Session
	TenantID  string
	Role      *types.Role
}

// HasPermission reports whether the admitted role carries the named permission.
func (d *Decision) HasPermission(permission string) bool {
	if d.Role == nil {
		return false
	}
	for _, p := range d.Role.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

var _ GateInterface = (*Gate)(nil)

type Gate struct {
	sessions SessionValidatorInterface
	csrf     CSRFVerifierInterface
	roles    RoleResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGate(
	sessions SessionValidatorInterface,
	csrf CSRFVerifierInterface,
	roles RoleResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Gate {
	return &Gate{
		sessions: sessions,
		csrf:     csrf,
		roles:    roles,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Authorize admits a request in a fixed order: session first, then CSRF for
// mutating requests, then the role in the target tenant. The first failing
// stage decides the error, so a caller with a bad session and a bad CSRF token
// is told about the session only.
func (g *Gate) Authorize(ctx context.Context, sessionID, targetTenantID, csrfToken string, mutating bool) (*Decision, error) {
	ctx, span := g.tracer.Start(ctx, "authz.Gate.Authorize")
	defer span.End()

	if sessionID == "" {
		return nil, ErrUnauthenticated
	}

	sess, principal, err := g.sessions.Validate(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionInvalid) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if mutating {
		ok, err := g.csrf.Verify(ctx, sessionID, csrfToken)
		if err != nil {
			// Fail closed on any verification error.
			return nil, fmt.Errorf("failed to verify csrf token: %w", err)
		}
		if !ok {
			return nil, ErrCSRFRejected
		}
	}

	decision := &Decision{
		Principal: principal,
		Session:   sess,
	}

	if targetTenantID == "" {
		// No tenant scope requested, session-only admission.
		return decision, nil
	}

	roles, err := g.roles.RolesForPrincipal(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roles: %w", err)
	}

	role, ok := roles[targetTenantID]
	if !ok {
		return nil, ErrUnauthorized
	}

	decision.TenantID = targetTenantID
	decision.Role = role

	return decision, nil
}

// ScopeResource checks that a resource belongs to the tenant the decision was
// made for. Out-of-scope resources are reported as absent, not forbidden.
func (g *Gate) ScopeResource(decision *Decision, resourceTenantID string) error {
	if decision == nil || decision.TenantID == "" {
		return ErrNotFound
	}
	if decision.TenantID != resourceTenantID {
		return ErrNotFound
	}
	return nil
}
