// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, principalID string) (*types.Session, error)
	Validate(ctx context.Context, sessionID string) (*types.Session, *types.Principal, error)
	List(ctx context.Context, principalID string) ([]*types.Session, error)
	Revoke(ctx context.Context, sessionID string) error
	RevokeOwned(ctx context.Context, principalID, idHash string) error
	RevokeAll(ctx context.Context, principalID, exceptSessionID string) ([]string, error)
}

// StorageInterface is the subset of the storage layer the session service needs.
type StorageInterface interface {
	CreateSession(ctx context.Context, s *types.Session) (*types.Session, error)
	GetSessionByIDHash(ctx context.Context, idHash string) (*types.Session, error)
	ListSessionsByPrincipal(ctx context.Context, principalID string) ([]*types.Session, error)
	RevokeSession(ctx context.Context, idHash string) error
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)
}

// CredentialVerifierInterface is implemented by the external credential
// subsystem. Password hashing mechanics live behind it.
type CredentialVerifierInterface interface {
	VerifyCredentials(ctx context.Context, email, password string) (*types.Principal, error)
}
