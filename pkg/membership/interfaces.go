// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
)

type ServiceInterface interface {
	RolesForPrincipal(ctx context.Context, principalID string) (map[string]*types.Role, error)
	MembershipsForPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error)
	Grant(ctx context.Context, principalID, tenantID, roleID string) (*types.AccountTenantLink, error)
	RevokeGrant(ctx context.Context, principalID, tenantID string) error
}

// StorageInterface is the subset of the storage layer the resolver needs.
type StorageInterface interface {
	ListRoleLinksByPrincipal(ctx context.Context, principalID string) ([]*storage.RoleLink, error)
	ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error)
	CreateLink(ctx context.Context, link *types.AccountTenantLink) (*types.AccountTenantLink, error)
	SoftDeleteLink(ctx context.Context, principalID, tenantID string) error
}
