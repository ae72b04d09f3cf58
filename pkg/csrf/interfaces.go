// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package csrf

import (
	"context"

	"github.com/canonical/account-service/internal/types"
)

type ServiceInterface interface {
	Issue(ctx context.Context, sessionID string) (string, error)
	Verify(ctx context.Context, sessionID, submitted string) (bool, error)
}

// StorageInterface is the subset of the storage layer the CSRF service needs.
type StorageInterface interface {
	GetSessionByIDHash(ctx context.Context, idHash string) (*types.Session, error)
	UpdateSessionCSRF(ctx context.Context, idHash, token string) error
}
