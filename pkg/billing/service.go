// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package billing manages the existence and state of external billing
// subscriptions backing tenant memberships. Remote cancellation is best
// effort; the local soft-delete is authoritative.
package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/token"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

const (
	mockCustomerPrefix     = "cus_mock_"
	mockSubscriptionPrefix = "sub_mock_"
	mockRefLen             = 16
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	config   *Config
	provider ProviderInterface
	storage  StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	config *Config,
	provider ProviderInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		config:   config,
		provider: provider,
		storage:  storage,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Provision creates the provider customer and trial subscription for a
// principal's billing account. In mock mode the refs are synthesized
// deterministically from the inputs and no network call is made. Live
// provisioning is never retried: a duplicate subscription is worse than a
// surfaced error.
func (s *Service) Provision(ctx context.Context, principal *types.Principal, billingAccount string) (*ProvisionResult, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.Provision")
	defer span.End()

	if s.config.Mode == ModeMock {
		seed := fmt.Sprintf("%s/%s", principal.ID, billingAccount)
		digest := token.SHA256Base64URL(seed)
		return &ProvisionResult{
			CustomerRef:     mockCustomerPrefix + digest[:mockRefLen],
			SubscriptionRef: mockSubscriptionPrefix + digest[:mockRefLen],
		}, nil
	}

	if s.provider == nil || s.config.APIBase == "" {
		return nil, ErrProviderUnavailable
	}

	customerRef, err := s.provider.CreateCustomer(ctx, map[string]string{
		"principal_id":    principal.ID,
		"billing_account": billingAccount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create billing customer: %w", err)
	}

	subscriptionRef, err := s.provider.CreateSubscription(ctx, SubscriptionRequest{
		CustomerRef:      customerRef,
		PriceRef:         s.config.PriceRef,
		TrialDays:        s.config.TrialDays,
		CancelAtTrialEnd: s.config.CancelAtTrialEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &ProvisionResult{
		CustomerRef:     customerRef,
		SubscriptionRef: subscriptionRef,
	}, nil
}

// StartMembership creates a trialing membership for the tenant and provisions
// its provider customer and subscription. The local row is written first so a
// failed provisioning leaves nothing half-attached remotely; the row is
// soft-deleted again before the error is surfaced.
func (s *Service) StartMembership(ctx context.Context, principal *types.Principal, tenantID, billingAccount string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.StartMembership")
	defer span.End()

	m, err := s.storage.CreateMembership(ctx, &types.Membership{
		TenantID: tenantID,
		Status:   types.MembershipTrialing,
	})
	if err != nil {
		// The unique index on live tenant rows keeps memberships at most
		// one per tenant, including under concurrent provisioning.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrMembershipExists
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	result, err := s.Provision(ctx, principal, billingAccount)
	if err != nil {
		if cleanupErr := s.storage.SoftDeleteMembership(ctx, m.ID); cleanupErr != nil {
			s.logger.Errorf("failed to clean up membership %s after provisioning error: %v", m.ID, cleanupErr)
		}
		return nil, err
	}

	if err := s.storage.UpdateMembershipRefs(ctx, m.ID, result.CustomerRef, result.SubscriptionRef); err != nil {
		return nil, fmt.Errorf("failed to attach billing refs to membership %s: %w", m.ID, err)
	}

	m.CustomerRef = &result.CustomerRef
	m.SubscriptionRef = &result.SubscriptionRef

	return m, nil
}

// Cancel attempts remote cancellation and reports whether it was confirmed.
// An empty ref has nothing to cancel; a mock ref is confirmed without any
// network call; a provider failure is logged and reported as unconfirmed,
// never raised. Callers proceed with their local state change either way.
// The provider treats cancellation as idempotent, so one retry is safe.
func (s *Service) Cancel(ctx context.Context, subscriptionRef string) bool {
	ctx, span := s.tracer.Start(ctx, "billing.Service.Cancel")
	defer span.End()

	if subscriptionRef == "" {
		return false
	}

	if strings.HasPrefix(subscriptionRef, mockSubscriptionPrefix) {
		return true
	}

	if s.provider == nil || s.config.APIBase == "" {
		s.logger.Errorf("billing provider not configured, cannot cancel subscription %s remotely", subscriptionRef)
		return false
	}

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if err = s.provider.CancelSubscription(ctx, subscriptionRef); err == nil {
			return true
		}
	}

	s.logger.Errorf("provider cancellation of %s failed, proceeding locally: %v", subscriptionRef, err)
	return false
}

// GetMembership loads a non-deleted membership by ID.
func (s *Service) GetMembership(ctx context.Context, membershipID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetMembership")
	defer span.End()

	return s.storage.GetMembershipByID(ctx, membershipID)
}

// CancelMembership cancels the remote subscription best-effort and then
// soft-deletes the local membership unconditionally.
func (s *Service) CancelMembership(ctx context.Context, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CancelMembership")
	defer span.End()

	m, err := s.storage.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return fmt.Errorf("failed to load membership: %w", err)
	}

	ref := ""
	if m.SubscriptionRef != nil {
		ref = *m.SubscriptionRef
	}

	if confirmed := s.Cancel(ctx, ref); !confirmed && ref != "" {
		s.logger.Warnf("remote cancellation unconfirmed for membership %s, local state is authoritative", membershipID)
	}

	if err := s.storage.SoftDeleteMembership(ctx, membershipID); err != nil {
		return fmt.Errorf("failed to soft-delete membership: %w", err)
	}

	return nil
}

// ActivateMembership moves a trialing membership to active, the payment
// method attached transition.
func (s *Service) ActivateMembership(ctx context.Context, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.ActivateMembership")
	defer span.End()

	m, err := s.storage.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return fmt.Errorf("failed to load membership: %w", err)
	}

	if err := validateTransition(m.Status, types.MembershipActive); err != nil {
		return err
	}

	return s.storage.UpdateMembershipStatus(ctx, membershipID, types.MembershipActive)
}

// HandlePaymentMethodAttached resolves the provider subscription ref to a
// membership and activates it.
func (s *Service) HandlePaymentMethodAttached(ctx context.Context, subscriptionRef string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.HandlePaymentMethodAttached")
	defer span.End()

	m, err := s.storage.GetMembershipBySubscriptionRef(ctx, subscriptionRef)
	if err != nil {
		return fmt.Errorf("failed to resolve membership for subscription %s: %w", subscriptionRef, err)
	}

	return s.ActivateMembership(ctx, m.ID)
}

// HandleTrialEnded cancels a membership whose trial lapsed without a payment
// method. Cancellation always soft-deletes the row, the same write every
// other cancellation path makes, so the tenant can provision again. An
// already active membership ignores the event.
func (s *Service) HandleTrialEnded(ctx context.Context, subscriptionRef string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.HandleTrialEnded")
	defer span.End()

	m, err := s.storage.GetMembershipBySubscriptionRef(ctx, subscriptionRef)
	if err != nil {
		return fmt.Errorf("failed to resolve membership for subscription %s: %w", subscriptionRef, err)
	}

	if m.Status != types.MembershipTrialing {
		return nil
	}

	return s.storage.SoftDeleteMembership(ctx, m.ID)
}

// validateTransition enforces the membership state machine:
// trialing -> active, trialing -> canceled, active -> canceled.
func validateTransition(from, to string) error {
	switch {
	case from == types.MembershipTrialing && (to == types.MembershipActive || to == types.MembershipCanceled):
		return nil
	case from == types.MembershipActive && to == types.MembershipCanceled:
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
}
