// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type ProvisionResult struct {
	CustomerRef     string
	SubscriptionRef string
}

type SubscriptionRequest struct {
	CustomerRef      string
	PriceRef         string
	TrialDays        int
	CancelAtTrialEnd bool
}

type ServiceInterface interface {
	Provision(ctx context.Context, principal *types.Principal, billingAccount string) (*ProvisionResult, error)
	StartMembership(ctx context.Context, principal *types.Principal, tenantID, billingAccount string) (*types.Membership, error)
	Cancel(ctx context.Context, subscriptionRef string) bool
	GetMembership(ctx context.Context, membershipID string) (*types.Membership, error)
	CancelMembership(ctx context.Context, membershipID string) error
	ActivateMembership(ctx context.Context, membershipID string) error
	HandlePaymentMethodAttached(ctx context.Context, subscriptionRef string) error
	HandleTrialEnded(ctx context.Context, subscriptionRef string) error
}

// ProviderInterface is the external billing provider surface.
type ProviderInterface interface {
	CreateCustomer(ctx context.Context, metadata map[string]string) (string, error)
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (string, error)
	CancelSubscription(ctx context.Context, subscriptionRef string) error
}

// StorageInterface is the subset of the storage layer the lifecycle manager needs.
type StorageInterface interface {
	CreateMembership(ctx context.Context, membership *types.Membership) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	GetMembershipBySubscriptionRef(ctx context.Context, ref string) (*types.Membership, error)
	UpdateMembershipStatus(ctx context.Context, id, status string) error
	UpdateMembershipRefs(ctx context.Context, id, customerRef, subscriptionRef string) error
	SoftDeleteMembership(ctx context.Context, id string) error
}
