// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type StorageInterface interface {
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)

	CreateSession(ctx context.Context, s *types.Session) (*types.Session, error)
	GetSessionByIDHash(ctx context.Context, idHash string) (*types.Session, error)
	ListSessionsByPrincipal(ctx context.Context, principalID string) ([]*types.Session, error)
	RevokeSession(ctx context.Context, idHash string) error
	UpdateSessionCSRF(ctx context.Context, idHash, token string) error

	CreateLink(ctx context.Context, link *types.AccountTenantLink) (*types.AccountTenantLink, error)
	SoftDeleteLink(ctx context.Context, principalID, tenantID string) error
	ListRoleLinksByPrincipal(ctx context.Context, principalID string) ([]*RoleLink, error)

	CreateMembership(ctx context.Context, membership *types.Membership) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	GetMembershipBySubscriptionRef(ctx context.Context, ref string) (*types.Membership, error)
	ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error)
	UpdateMembershipStatus(ctx context.Context, id, status string) error
	SoftDeleteMembership(ctx context.Context, id string) error
	UpdateMembershipRefs(ctx context.Context, id, customerRef, subscriptionRef string) error
}
