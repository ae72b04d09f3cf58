// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package csrf

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
	"github.com/canonical/account-service/pkg/session"
)

//go:generate mockgen -build_flags=--mod=mod -package csrf -destination ./mock_csrf.go -source=./interfaces.go

func newService(storage StorageInterface) *Service {
	return NewService(storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestService_IssueRotates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rawID := "raw-session-id"
	idHash := token.SHA256Base64URL(rawID)

	issued := make([]string, 0, 2)
	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().UpdateSessionCSRF(gomock.Any(), idHash, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, tok string) error {
			issued = append(issued, tok)
			return nil
		}).Times(2)

	s := newService(mockStorage)

	first, err := s.Issue(context.Background(), rawID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Issue(context.Background(), rawID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected a fresh token on each issue")
	}
	if issued[0] != first || issued[1] != second {
		t.Error("stored tokens must match the issued ones")
	}
}

func TestService_IssueUnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().UpdateSessionCSRF(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)

	s := newService(mockStorage)

	_, err := s.Issue(context.Background(), "unknown")
	if !errors.Is(err, session.ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestService_Verify(t *testing.T) {
	now := time.Now()
	rawID := "raw-session-id"
	idHash := token.SHA256Base64URL(rawID)
	boundToken := "bound-token"
	revokedAt := now.Add(-time.Minute)
	dbErr := errors.New("db error")

	liveSession := func() *types.Session {
		return &types.Session{IDHash: idHash, PrincipalID: "principal-1", CSRFToken: boundToken, ExpiresAt: now.Add(time.Hour)}
	}

	testCases := []struct {
		name        string
		submitted   string
		setupMocks  func(*MockStorageInterface)
		expectedOK  bool
		expectedErr error
	}{
		{
			name:      "match",
			submitted: boundToken,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(liveSession(), nil)
			},
			expectedOK: true,
		},
		{
			name:      "mismatch",
			submitted: "other-token",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(liveSession(), nil)
			},
			expectedOK: false,
		},
		{
			name:       "missing token",
			submitted:  "",
			setupMocks: func(mockStorage *MockStorageInterface) {},
			expectedOK: false,
		},
		{
			name:      "unknown session",
			submitted: boundToken,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(nil, storage.ErrNotFound)
			},
			expectedOK: false,
		},
		{
			name:      "revoked session",
			submitted: boundToken,
			setupMocks: func(mockStorage *MockStorageInterface) {
				sess := liveSession()
				sess.RevokedAt = &revokedAt
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(sess, nil)
			},
			expectedOK: false,
		},
		{
			name:      "expired session",
			submitted: boundToken,
			setupMocks: func(mockStorage *MockStorageInterface) {
				sess := liveSession()
				sess.ExpiresAt = now.Add(-time.Hour)
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(sess, nil)
			},
			expectedOK: false,
		},
		{
			name:      "storage error fails closed",
			submitted: boundToken,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(nil, dbErr)
			},
			expectedOK:  false,
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

			ok, err := s.Verify(context.Background(), rawID, tc.submitted)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ok != tc.expectedOK {
				t.Errorf("expected ok=%v, got %v", tc.expectedOK, ok)
			}
		})
	}
}

func TestService_RotationInvalidatesPriorToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rawID := "raw-session-id"
	idHash := token.SHA256Base64URL(rawID)
	sess := &types.Session{IDHash: idHash, PrincipalID: "principal-1", CSRFToken: "old-token", ExpiresAt: time.Now().Add(time.Hour)}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().UpdateSessionCSRF(gomock.Any(), idHash, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, tok string) error {
			sess.CSRFToken = tok
			return nil
		})
	mockStorage.EXPECT().GetSessionByIDHash(gomock.Any(), idHash).Return(sess, nil).Times(2)

	s := newService(mockStorage)

	rotated, err := s.Issue(context.Background(), rawID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := s.Verify(context.Background(), rawID, "old-token")
	if err != nil || ok {
		t.Errorf("expected the pre-rotation token to be rejected, got ok=%v err=%v", ok, err)
	}

	ok, err = s.Verify(context.Background(), rawID, rotated)
	if err != nil || !ok {
		t.Errorf("expected the rotated token to verify, got ok=%v err=%v", ok, err)
	}
}
