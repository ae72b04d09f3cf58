// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/token"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go

func newService(storage StorageInterface) *Service {
	return NewService(storage, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *types.Session) (*types.Session, error) {
			if s.ID != "" {
				t.Error("raw session ID must not reach storage")
			}
			if s.IDHash == "" || s.CSRFToken == "" {
				t.Error("expected id hash and csrf token to be set")
			}
			stored := *s
			stored.CreatedAt = time.Now()
			return &stored, nil
		})

	s := newService(mockStorage)

	created, err := s.Create(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected raw session ID on the returned session")
	}
	if token.SHA256Base64URL(created.ID) != created.IDHash {
		t.Error("stored hash must be the digest of the returned ID")
	}
	if !created.ExpiresAt.After(time.Now()) {
		t.Error("expected a future expiry")
	}
}

func TestService_CreateRetriesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	gomock.InOrder(
		mockStorage.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
		mockStorage.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *types.Session) (*types.Session, error) {
				stored := *s
				return &stored, nil
			}),
	)

	s := newService(mockStorage)

	created, err := s.Create(context.Background(), "principal-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected raw session ID after retry")
	}
}

func TestService_CreateCollisionExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey).Times(3)

	s := newService(mockStorage)

	_, err := s.Create(context.Background(), "principal-1")
	if !errors.Is(err, ErrCollisionExhausted) {
		t.Fatalf("expected ErrCollisionExhausted, got %v", err)
	}
}

func TestService_Validate(t *testing.T) {
	now := time.Now()
	rawID := "raw-session-id"
	idHash := token.SHA256Base64URL(rawID)
	principal := &types.Principal{ID: "principal-1", Email: "a@example.com"}
	revokedAt := now.Add(-time.Minute)
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(
					&types.Session{IDHash: idHash, PrincipalID: principal.ID, ExpiresAt: now.Add(time.Hour)}, nil)
				mockStorage.EXPECT().GetPrincipalByID(gomock.Any(), principal.ID).Return(principal, nil)
			},
		},
		{
			name: "unknown session",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrSessionInvalid,
		},
		{
			name: "revoked session",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(
					&types.Session{IDHash: idHash, PrincipalID: principal.ID, ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}, nil)
			},
			expectedErr: ErrSessionInvalid,
		},
		{
			name: "expired session",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(
					&types.Session{IDHash: idHash, PrincipalID: principal.ID, ExpiresAt: now.Add(-time.Hour)}, nil)
			},
			expectedErr: ErrSessionInvalid,
		},
		{
			name: "principal gone",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(
					&types.Session{IDHash: idHash, PrincipalID: principal.ID, ExpiresAt: now.Add(time.Hour)}, nil)
				mockStorage.EXPECT().GetPrincipalByID(gomock.Any(), principal.ID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrSessionInvalid,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newService(mockStorage)

			sess, got, err := s.Validate(context.Background(), rawID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sess == nil || sess.IDHash != idHash {
				t.Errorf("expected session with hash %s", idHash)
			}
			if got.ID != principal.ID {
				t.Errorf("expected principal %s, got %s", principal.ID, got.ID)
			}
		})
	}
}

func TestService_RevokeIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rawID := "raw-session-id"

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().RevokeSession(gomock.Any(), token.SHA256Base64URL(rawID)).Return(nil).Times(2)

	s := newService(mockStorage)

	if err := s.Revoke(context.Background(), rawID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Revoke(context.Background(), rawID); err != nil {
		t.Fatalf("unexpected error on second revoke: %v", err)
	}
}

func TestService_RevokeOwned(t *testing.T) {
	owned := &types.Session{IDHash: "owned-hash", PrincipalID: "principal-1", ExpiresAt: time.Now().Add(time.Hour)}

	testCases := []struct {
		name       string
		idHash     string
		setupMocks func(*MockStorageInterface)
	}{
		{
			name:   "owned session is revoked",
			idHash: owned.IDHash,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListSessionsByPrincipal(gomock.Any(), "principal-1").Return([]*types.Session{owned}, nil)
				mockStorage.EXPECT().RevokeSession(gomock.Any(), owned.IDHash).Return(nil)
			},
		},
		{
			name:   "foreign session is silently ignored",
			idHash: "someone-elses-hash",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListSessionsByPrincipal(gomock.Any(), "principal-1").Return([]*types.Session{owned}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newService(mockStorage)

			if err := s.RevokeOwned(context.Background(), "principal-1", tc.idHash); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_RevokeAllSkipsExcepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exceptID := "current-session"
	exceptHash := token.SHA256Base64URL(exceptID)
	expiry := time.Now().Add(time.Hour)
	revokedAt := time.Now().Add(-time.Minute)

	sessions := []*types.Session{
		{IDHash: exceptHash, PrincipalID: "principal-1", ExpiresAt: expiry},
		{IDHash: "other-1", PrincipalID: "principal-1", ExpiresAt: expiry},
		{IDHash: "other-2", PrincipalID: "principal-1", ExpiresAt: expiry},
		{IDHash: "already-revoked", PrincipalID: "principal-1", ExpiresAt: expiry, RevokedAt: &revokedAt},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListSessionsByPrincipal(gomock.Any(), "principal-1").Return(sessions, nil)
	mockStorage.EXPECT().RevokeSession(gomock.Any(), "other-1").Return(nil)
	mockStorage.EXPECT().RevokeSession(gomock.Any(), "other-2").Return(nil)

	s := newService(mockStorage)

	failed, err := s.RevokeAll(context.Background(), "principal-1", exceptID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failed) != 0 {
		t.Errorf("expected no failures, got %v", failed)
	}
}

func TestService_RevokeAllContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiry := time.Now().Add(time.Hour)
	sessions := []*types.Session{
		{IDHash: "s-1", PrincipalID: "principal-1", ExpiresAt: expiry},
		{IDHash: "s-2", PrincipalID: "principal-1", ExpiresAt: expiry},
		{IDHash: "s-3", PrincipalID: "principal-1", ExpiresAt: expiry},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListSessionsByPrincipal(gomock.Any(), "principal-1").Return(sessions, nil)
	mockStorage.EXPECT().RevokeSession(gomock.Any(), "s-1").Return(nil)
	mockStorage.EXPECT().RevokeSession(gomock.Any(), "s-2").Return(errors.New("transient"))
	mockStorage.EXPECT().RevokeSession(gomock.Any(), "s-3").Return(nil)

	s := newService(mockStorage)

	failed, err := s.RevokeAll(context.Background(), "principal-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failed) != 1 || failed[0] != "s-2" {
		t.Errorf("expected [s-2] to fail, got %v", failed)
	}
}

func TestService_RevokeAllHonorsCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiry := time.Now().Add(time.Hour)
	sessions := []*types.Session{
		{IDHash: "s-1", PrincipalID: "principal-1", ExpiresAt: expiry},
		{IDHash: "s-2", PrincipalID: "principal-1", ExpiresAt: expiry},
	}

	ctx, cancel := context.WithCancel(context.Background())

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListSessionsByPrincipal(gomock.Any(), "principal-1").Return(sessions, nil)
	mockStorage.EXPECT().RevokeSession(gomock.Any(), "s-1").DoAndReturn(
		func(context.Context, string) error {
			cancel()
			return nil
		})

	s := newService(mockStorage)

	_, err := s.RevokeAll(ctx, "principal-1", "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
