// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_membership.go -source=./interfaces.go

func newService(storage StorageInterface) *Service {
	return NewService(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_RolesForPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	links := []*storage.RoleLink{
		{LinkID: "link-1", TenantID: "tenant-1", Role: types.Role{ID: "role-1", Name: "admin", Permissions: []string{"read", "write"}}},
		{LinkID: "link-2", TenantID: "tenant-2", Role: types.Role{ID: "role-2", Name: "viewer", Permissions: []string{"read"}}},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListRoleLinksByPrincipal(gomock.Any(), "principal-1").Return(links, nil)

	s := newService(mockStorage)

	roles, err := s.RolesForPrincipal(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roles) != 2 {
		t.Fatalf("expected 2 tenants, got %d", len(roles))
	}
	if roles["tenant-1"].Name != "admin" || roles["tenant-2"].Name != "viewer" {
		t.Errorf("unexpected role map: %v", roles)
	}
}

func TestService_RolesForPrincipalDuplicateLinkKeepsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Two live links for the same tenant; the storage layer orders by
	// creation time so the first row is the older link.
	links := []*storage.RoleLink{
		{LinkID: "link-1", TenantID: "tenant-1", Role: types.Role{ID: "role-1", Name: "admin"}},
		{LinkID: "link-2", TenantID: "tenant-1", Role: types.Role{ID: "role-2", Name: "viewer"}},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListRoleLinksByPrincipal(gomock.Any(), "principal-1").Return(links, nil)

	s := newService(mockStorage)

	roles, err := s.RolesForPrincipal(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("resolution must not fail on a duplicate link: %v", err)
	}
	if len(roles) != 1 {
		t.Fatalf("expected 1 tenant, got %d", len(roles))
	}
	if roles["tenant-1"].Name != "admin" {
		t.Errorf("expected the first-encountered link to win, got %q", roles["tenant-1"].Name)
	}
}

func TestService_RolesForPrincipalCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	links := []*storage.RoleLink{
		{LinkID: "link-1", TenantID: "tenant-1", Role: types.Role{ID: "role-1", Name: "admin"}},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListRoleLinksByPrincipal(gomock.Any(), "principal-1").Return(links, nil).Times(1)

	s := newService(mockStorage)

	for i := 0; i < 3; i++ {
		roles, err := s.RolesForPrincipal(context.Background(), "principal-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(roles) != 1 {
			t.Fatalf("expected 1 tenant, got %d", len(roles))
		}
	}
}

func TestService_RolesForPrincipalCallerMutationDoesNotPoisonCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	links := []*storage.RoleLink{
		{LinkID: "link-1", TenantID: "tenant-1", Role: types.Role{ID: "role-1", Name: "admin"}},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListRoleLinksByPrincipal(gomock.Any(), "principal-1").Return(links, nil).Times(1)

	s := newService(mockStorage)

	roles, err := s.RolesForPrincipal(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A caller editing its result must not affect later resolutions served
	// from the cache.
	delete(roles, "tenant-1")
	roles["tenant-2"] = &types.Role{ID: "role-2", Name: "viewer"}

	again, err := s.RolesForPrincipal(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("expected 1 tenant, got %d", len(again))
	}
	if again["tenant-1"] == nil || again["tenant-1"].Name != "admin" {
		t.Errorf("cached role map was mutated through a caller's copy: %v", again)
	}
}

func TestService_RolesForPrincipalStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := errors.New("db error")
	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListRoleLinksByPrincipal(gomock.Any(), "principal-1").Return(nil, dbErr)

	s := newService(mockStorage)

	if _, err := s.RolesForPrincipal(context.Background(), "principal-1"); !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestService_MembershipsForPrincipalDeduplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	// The same membership reached through two linked tenants appears twice in
	// the joined rows.
	memberships := []*types.Membership{
		{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipTrialing, CreatedAt: now},
		{ID: "m-2", TenantID: "tenant-2", Status: types.MembershipActive, CreatedAt: now},
		{ID: "m-1", TenantID: "tenant-1", Status: types.MembershipTrialing, CreatedAt: now},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), "principal-1").Return(memberships, nil)

	s := newService(mockStorage)

	got, err := s.MembershipsForPrincipal(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 memberships after dedup, got %d", len(got))
	}
	if got[0].ID != "m-1" || got[1].ID != "m-2" {
		t.Errorf("expected first-seen order [m-1 m-2], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestService_MembershipsForPrincipalEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListMembershipsByPrincipal(gomock.Any(), "principal-1").Return([]*types.Membership{}, nil)

	s := newService(mockStorage)

	got, err := s.MembershipsForPrincipal(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no memberships, got %d", len(got))
	}
}

func TestService_Grant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := &types.AccountTenantLink{
		ID:          "link-1",
		PrincipalID: "principal-1",
		TenantID:    "tenant-1",
		RoleID:      "role-1",
		CreatedAt:   time.Now(),
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().
		CreateLink(gomock.Any(), &types.AccountTenantLink{PrincipalID: "principal-1", TenantID: "tenant-1", RoleID: "role-1"}).
		Return(created, nil)

	s := newService(mockStorage)

	link, err := s.Grant(context.Background(), "principal-1", "tenant-1", "role-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.ID != "link-1" {
		t.Errorf("expected link-1, got %s", link.ID)
	}
}

func TestService_GrantDuplicateLiveLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	s := newService(mockStorage)

	if _, err := s.Grant(context.Background(), "principal-1", "tenant-1", "role-1"); !errors.Is(err, ErrAlreadyLinked) {
		t.Fatalf("expected ErrAlreadyLinked, got %v", err)
	}
}

func TestService_GrantInvalidatesRoleCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	// Two resolutions hit storage because the grant in between drops the
	// cached role map.
	mockStorage.EXPECT().ListRoleLinksByPrincipal(gomock.Any(), "principal-1").Return(nil, nil).Times(2)
	mockStorage.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(&types.AccountTenantLink{ID: "link-1"}, nil)

	s := newService(mockStorage)

	ctx := context.Background()
	if _, err := s.RolesForPrincipal(ctx, "principal-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Grant(ctx, "principal-1", "tenant-1", "role-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.RolesForPrincipal(ctx, "principal-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_RevokeGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().SoftDeleteLink(gomock.Any(), "principal-1", "tenant-1").Return(nil)

	s := newService(mockStorage)

	if err := s.RevokeGrant(context.Background(), "principal-1", "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
