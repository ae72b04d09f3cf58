// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package membership derives authorization facts from tenant links: the role a
// principal holds per tenant, and the billing memberships reachable through
// those links. Soft-deleted rows are excluded at every hop.
package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

// ErrInvariantViolation marks a duplicate non-deleted link per
// (principal, tenant). It is logged, never returned: resolution proceeds with
// the first-encountered link.
var ErrInvariantViolation = errors.New("duplicate live account-tenant link")

// ErrAlreadyLinked is returned by Grant when the principal already holds a
// live link to the tenant.
var ErrAlreadyLinked = errors.New("principal already linked to tenant")

const (
	rolesCacheTTL     = 30 * time.Second
	rolesCacheCleanup = time.Minute
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	// roles is a short-TTL read cache; resolution is defensive reading, not
	// an authoritative write path, so staleness is bounded by the TTL only.
	roles *gocache.Cache

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		roles:   gocache.New(rolesCacheTTL, rolesCacheCleanup),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RolesForPrincipal maps tenant ID to the role the principal holds there,
// joining non-deleted links to non-deleted roles. When the same tenant appears
// on more than one live link the first-encountered link wins and the violation
// is logged as a warning; resolution never fails for it.
func (s *Service) RolesForPrincipal(ctx context.Context, principalID string) (map[string]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RolesForPrincipal")
	defer span.End()

	if cached, ok := s.roles.Get(principalID); ok {
		return copyRoleMap(cached.(map[string]*types.Role)), nil
	}

	links, err := s.storage.ListRoleLinksByPrincipal(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roles: %w", err)
	}

	rolesByTenant := make(map[string]*types.Role, len(links))
	for _, link := range links {
		if _, ok := rolesByTenant[link.TenantID]; ok {
			s.logger.Warnf("%v: principal %s tenant %s, keeping first link", ErrInvariantViolation, principalID, link.TenantID)
			continue
		}
		role := link.Role
		rolesByTenant[link.TenantID] = &role
	}

	s.roles.Set(principalID, rolesByTenant, gocache.DefaultExpiration)

	return copyRoleMap(rolesByTenant), nil
}

// copyRoleMap keeps the cached map private to the cache. Callers get their own
// map, so mutating the result cannot corrupt later resolutions.
func copyRoleMap(roles map[string]*types.Role) map[string]*types.Role {
	out := make(map[string]*types.Role, len(roles))
	for tenantID, role := range roles {
		out[tenantID] = role
	}
	return out
}

// MembershipsForPrincipal returns the memberships reachable through the
// principal's live tenant links, deduplicated by membership ID in first-seen
// order. A membership shared by several linked tenants appears once.
func (s *Service) MembershipsForPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.MembershipsForPrincipal")
	defer span.End()

	memberships, err := s.storage.ListMembershipsByPrincipal(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve memberships: %w", err)
	}

	seen := make(map[string]struct{}, len(memberships))
	deduped := make([]*types.Membership, 0, len(memberships))
	for _, m := range memberships {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		deduped = append(deduped, m)
	}

	return deduped, nil
}

// Grant links the principal to the tenant with the given role. The partial
// unique index keeps at most one live link per pair, so a second grant for
// the same pair surfaces as ErrAlreadyLinked. The cached role map for the
// principal is dropped so the new grant is visible immediately.
func (s *Service) Grant(ctx context.Context, principalID, tenantID, roleID string) (*types.AccountTenantLink, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Grant")
	defer span.End()

	link, err := s.storage.CreateLink(ctx, &types.AccountTenantLink{
		PrincipalID: principalID,
		TenantID:    tenantID,
		RoleID:      roleID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrAlreadyLinked
		}
		return nil, fmt.Errorf("failed to grant link: %w", err)
	}

	s.roles.Delete(principalID)

	return link, nil
}

// RevokeGrant soft-deletes the live link between principal and tenant. A
// missing link is not an error. The principal's cached role map is dropped
// so the revocation takes effect without waiting out the TTL.
func (s *Service) RevokeGrant(ctx context.Context, principalID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RevokeGrant")
	defer span.End()

	if err := s.storage.SoftDeleteLink(ctx, principalID, tenantID); err != nil {
		return fmt.Errorf("failed to revoke link: %w", err)
	}

	s.roles.Delete(principalID)

	return nil
}
