// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go

func mockConfig() *Config {
	return NewConfig("", "2024-06-20", "", "mock", "price_basic", 14, true, 10*time.Second)
}

func liveConfig() *Config {
	return NewConfig("https://billing.example.com", "2024-06-20", "key", "live", "price_basic", 14, true, 10*time.Second)
}

func newTestService(config *Config, provider ProviderInterface, storage StorageInterface) *Service {
	return NewService(config, provider, storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_ProvisionMockModeIsDeterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECTs on the provider: mock mode must not touch the network.
	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	s := newTestService(mockConfig(), mockProvider, mockStorage)
	principal := &types.Principal{ID: "principal-1"}

	first, err := s.Provision(context.Background(), principal, "acct-1")
	assert.NoError(t, err)
	second, err := s.Provision(context.Background(), principal, "acct-1")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first.CustomerRef, "cus_mock_")
	assert.Contains(t, first.SubscriptionRef, "sub_mock_")

	other, err := s.Provision(context.Background(), principal, "acct-2")
	assert.NoError(t, err)
	assert.NotEqual(t, first.SubscriptionRef, other.SubscriptionRef)
}

func TestService_ProvisionLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	mockProvider.EXPECT().CreateCustomer(gomock.Any(), map[string]string{
		"principal_id":    "principal-1",
		"billing_account": "acct-1",
	}).Return("cus_123", nil)
	mockProvider.EXPECT().CreateSubscription(gomock.Any(), SubscriptionRequest{
		CustomerRef:      "cus_123",
		PriceRef:         "price_basic",
		TrialDays:        14,
		CancelAtTrialEnd: true,
	}).Return("sub_456", nil)

	s := newTestService(liveConfig(), mockProvider, mockStorage)

	result, err := s.Provision(context.Background(), &types.Principal{ID: "principal-1"}, "acct-1")
	assert.NoError(t, err)
	assert.Equal(t, "cus_123", result.CustomerRef)
	assert.Equal(t, "sub_456", result.SubscriptionRef)
}

func TestService_ProvisionLiveNoRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	providerErr := errors.New("provider down")
	mockProvider.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", providerErr).Times(1)

	s := newTestService(liveConfig(), mockProvider, mockStorage)

	_, err := s.Provision(context.Background(), &types.Principal{ID: "principal-1"}, "acct-1")
	assert.ErrorIs(t, err, providerErr)
}

func TestService_ProvisionLiveMisconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	config := NewConfig("", "2024-06-20", "", "live", "price_basic", 14, true, 10*time.Second)

	s := newTestService(config, nil, mockStorage)

	_, err := s.Provision(context.Background(), &types.Principal{ID: "principal-1"}, "acct-1")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestService_Cancel(t *testing.T) {
	providerErr := errors.New("provider down")

	testCases := []struct {
		name            string
		subscriptionRef string
		setupMocks      func(*MockProviderInterface)
		expected        bool
	}{
		{
			name:            "empty ref has nothing to cancel",
			subscriptionRef: "",
			setupMocks:      func(*MockProviderInterface) {},
			expected:        false,
		},
		{
			name:            "mock ref confirmed without network",
			subscriptionRef: "sub_mock_abcdef",
			setupMocks:      func(*MockProviderInterface) {},
			expected:        true,
		},
		{
			name:            "provider success",
			subscriptionRef: "sub_456",
			setupMocks: func(mockProvider *MockProviderInterface) {
				mockProvider.EXPECT().CancelSubscription(gomock.Any(), "sub_456").Return(nil)
			},
			expected: true,
		},
		{
			name:            "provider succeeds on retry",
			subscriptionRef: "sub_456",
			setupMocks: func(mockProvider *MockProviderInterface) {
				gomock.InOrder(
					mockProvider.EXPECT().CancelSubscription(gomock.Any(), "sub_456").Return(providerErr),
					mockProvider.EXPECT().CancelSubscription(gomock.Any(), "sub_456").Return(nil),
				)
			},
			expected: true,
		},
		{
			name:            "provider failure downgraded to false",
			subscriptionRef: "sub_456",
			setupMocks: func(mockProvider *MockProviderInterface) {
				mockProvider.EXPECT().CancelSubscription(gomock.Any(), "sub_456").Return(providerErr).Times(2)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockProvider)

			s := newTestService(liveConfig(), mockProvider, mockStorage)

			assert.Equal(t, tc.expected, s.Cancel(context.Background(), tc.subscriptionRef))
		})
	}
}

func TestService_CancelMembership(t *testing.T) {
	subRef := "sub_456"
	providerErr := errors.New("provider down")

	testCases := []struct {
		name       string
		membership *types.Membership
		setupMocks func(*MockProviderInterface, *MockStorageInterface)
	}{
		{
			name:       "remote confirmed then local soft-delete",
			membership: &types.Membership{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipActive, SubscriptionRef: &subRef},
			setupMocks: func(mockProvider *MockProviderInterface, mockStorage *MockStorageInterface) {
				mockProvider.EXPECT().CancelSubscription(gomock.Any(), subRef).Return(nil)
				mockStorage.EXPECT().SoftDeleteMembership(gomock.Any(), "m-1").Return(nil)
			},
		},
		{
			name:       "remote failure still soft-deletes locally",
			membership: &types.Membership{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipActive, SubscriptionRef: &subRef},
			setupMocks: func(mockProvider *MockProviderInterface, mockStorage *MockStorageInterface) {
				mockProvider.EXPECT().CancelSubscription(gomock.Any(), subRef).Return(providerErr).Times(2)
				mockStorage.EXPECT().SoftDeleteMembership(gomock.Any(), "m-1").Return(nil)
			},
		},
		{
			name:       "no subscription ref skips the provider",
			membership: &types.Membership{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipTrialing},
			setupMocks: func(mockProvider *MockProviderInterface, mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SoftDeleteMembership(gomock.Any(), "m-1").Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(tc.membership, nil)
			tc.setupMocks(mockProvider, mockStorage)

			s := newTestService(liveConfig(), mockProvider, mockStorage)

			assert.NoError(t, s.CancelMembership(context.Background(), "m-1"))
		})
	}
}

func TestService_ActivateMembership(t *testing.T) {
	testCases := []struct {
		name        string
		status      string
		update      bool
		expectedErr error
	}{
		{name: "trialing activates", status: types.MembershipTrialing, update: true},
		{name: "active is not reactivated", status: types.MembershipActive, expectedErr: ErrInvalidTransition},
		{name: "canceled is terminal", status: types.MembershipCanceled, expectedErr: ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(
				&types.Membership{ID: "m-1", TenantID: "tenant-1", Status: tc.status}, nil)
			if tc.update {
				mockStorage.EXPECT().UpdateMembershipStatus(gomock.Any(), "m-1", types.MembershipActive).Return(nil)
			}

			s := newTestService(mockConfig(), mockProvider, mockStorage)

			err := s.ActivateMembership(context.Background(), "m-1")
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_HandleTrialEnded(t *testing.T) {
	subRef := "sub_456"

	testCases := []struct {
		name    string
		status  string
		cancels bool
	}{
		{name: "trialing is canceled and soft-deleted", status: types.MembershipTrialing, cancels: true},
		{name: "active ignores the event", status: types.MembershipActive},
		{name: "canceled ignores the event", status: types.MembershipCanceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProvider := NewMockProviderInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)

			mockStorage.EXPECT().GetMembershipBySubscriptionRef(gomock.Any(), subRef).Return(
				&types.Membership{ID: "m-1", TenantID: "tenant-1", Status: tc.status, SubscriptionRef: &subRef}, nil)
			if tc.cancels {
				// The lapsed row is removed from the live set so the tenant
				// can provision a fresh membership afterwards.
				mockStorage.EXPECT().SoftDeleteMembership(gomock.Any(), "m-1").Return(nil)
			}

			s := newTestService(mockConfig(), mockProvider, mockStorage)

			assert.NoError(t, s.HandleTrialEnded(context.Background(), subRef))
		})
	}
}

func TestService_HandlePaymentMethodAttached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subRef := "sub_456"

	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	mockStorage.EXPECT().GetMembershipBySubscriptionRef(gomock.Any(), subRef).Return(
		&types.Membership{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipTrialing, SubscriptionRef: &subRef}, nil)
	mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(
		&types.Membership{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipTrialing, SubscriptionRef: &subRef}, nil)
	mockStorage.EXPECT().UpdateMembershipStatus(gomock.Any(), "m-1", types.MembershipActive).Return(nil)

	s := newTestService(mockConfig(), mockProvider, mockStorage)

	assert.NoError(t, s.HandlePaymentMethodAttached(context.Background(), subRef))
}

func TestService_StartMembershipMockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	created := &types.Membership{ID: "membership-1", TenantID: "tenant-1", Status: types.MembershipTrialing}
	mockStorage.EXPECT().
		CreateMembership(gomock.Any(), &types.Membership{TenantID: "tenant-1", Status: types.MembershipTrialing}).
		Return(created, nil)
	mockStorage.EXPECT().
		UpdateMembershipRefs(gomock.Any(), "membership-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, customerRef, subscriptionRef string) error {
			assert.Contains(t, customerRef, "cus_mock_")
			assert.Contains(t, subscriptionRef, "sub_mock_")
			return nil
		})

	s := newTestService(mockConfig(), mockProvider, mockStorage)

	m, err := s.StartMembership(context.Background(), &types.Principal{ID: "principal-1"}, "tenant-1", "acct-1")
	assert.NoError(t, err)
	assert.Equal(t, "membership-1", m.ID)
	assert.Equal(t, types.MembershipTrialing, m.Status)
	assert.NotNil(t, m.SubscriptionRef)
}

func TestService_StartMembershipSecondLiveMembershipRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	created := &types.Membership{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipTrialing}
	gomock.InOrder(
		mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(created, nil),
		mockStorage.EXPECT().UpdateMembershipRefs(gomock.Any(), "m-1", gomock.Any(), gomock.Any()).Return(nil),
		// The unique index on live tenant rows rejects the second insert.
		mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
	)

	s := newTestService(mockConfig(), mockProvider, mockStorage)
	principal := &types.Principal{ID: "principal-1"}

	first, err := s.StartMembership(context.Background(), principal, "tenant-1", "acct-1")
	assert.NoError(t, err)
	assert.Equal(t, "m-1", first.ID)

	_, err = s.StartMembership(context.Background(), principal, "tenant-1", "acct-1")
	assert.ErrorIs(t, err, ErrMembershipExists)
}

func TestService_StartMembershipProvisioningFailureCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := NewMockProviderInterface(ctrl)
	mockProvider.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))

	mockStorage := NewMockStorageInterface(ctrl)
	created := &types.Membership{ID: "membership-1", TenantID: "tenant-1", Status: types.MembershipTrialing}
	mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(created, nil)
	mockStorage.EXPECT().SoftDeleteMembership(gomock.Any(), "membership-1").Return(nil)

	s := newTestService(liveConfig(), mockProvider, mockStorage)

	_, err := s.StartMembership(context.Background(), &types.Principal{ID: "principal-1"}, "tenant-1", "acct-1")
	assert.Error(t, err)
}
