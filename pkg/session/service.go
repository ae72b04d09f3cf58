// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/token"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

const (
	// sessionIDBytes gives 256 bits of entropy per session identifier.
	sessionIDBytes = 32
	csrfTokenBytes = 32

	// maxIDAttempts bounds regeneration on id_hash collision.
	maxIDAttempts = 3
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		lifetime: lifetime,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Create issues a new session for the principal, with a fresh CSRF token bound
// to it. The raw session ID is present on the returned session and is never
// persisted or recoverable afterwards. Safe under concurrent logins for the
// same principal; each call is an independent insert.
func (s *Service) Create(ctx context.Context, principalID string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Create")
	defer span.End()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		rawID, err := token.GenerateOpaque(sessionIDBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session id: %w", err)
		}

		csrfToken, err := token.GenerateOpaque(csrfTokenBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to generate csrf token: %w", err)
		}

		created, err := s.storage.CreateSession(ctx, &types.Session{
			IDHash:      token.SHA256Base64URL(rawID),
			PrincipalID: principalID,
			CSRFToken:   csrfToken,
			ExpiresAt:   time.Now().Add(s.lifetime),
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Warnf("session id digest collision for principal %s, regenerating", principalID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}

		created.ID = rawID
		return created, nil
	}

	return nil, ErrCollisionExhausted
}

// Validate resolves a raw session ID to the stored session and its owning
// principal. Unknown, revoked and expired sessions all fail with
// ErrSessionInvalid; expiry is evaluated here, lazily, not by any sweeper.
func (s *Service) Validate(ctx context.Context, sessionID string) (*types.Session, *types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Validate")
	defer span.End()

	sess, err := s.storage.GetSessionByIDHash(ctx, token.SHA256Base64URL(sessionID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrSessionInvalid
		}
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	if !sess.Live(time.Now()) {
		return nil, nil, ErrSessionInvalid
	}

	principal, err := s.storage.GetPrincipalByID(ctx, sess.PrincipalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Principal removed after session issue; the session is dead too.
			return nil, nil, ErrSessionInvalid
		}
		return nil, nil, fmt.Errorf("failed to load principal: %w", err)
	}

	return sess, principal, nil
}

// List returns the principal's sessions, most recently created first.
func (s *Service) List(ctx context.Context, principalID string) ([]*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.List")
	defer span.End()

	return s.storage.ListSessionsByPrincipal(ctx, principalID)
}

// Revoke sets revoked_at for the session. Idempotent: revoking an unknown or
// already revoked session is not an error.
func (s *Service) Revoke(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "session.Service.Revoke")
	defer span.End()

	return s.storage.RevokeSession(ctx, token.SHA256Base64URL(sessionID))
}

// RevokeOwned revokes a session identified by its stored digest, but only if
// it belongs to the given principal. A digest not owned by the principal is
// ignored rather than reported, so the endpoint is not an existence oracle.
func (s *Service) RevokeOwned(ctx context.Context, principalID, idHash string) error {
	ctx, span := s.tracer.Start(ctx, "session.Service.RevokeOwned")
	defer span.End()

	sessions, err := s.storage.ListSessionsByPrincipal(ctx, principalID)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	for _, sess := range sessions {
		if sess.IDHash == idHash {
			return s.storage.RevokeSession(ctx, idHash)
		}
	}

	return nil
}

// RevokeAll revokes every live session of the principal except the optionally
// excepted one. It continues past individual failures and returns the digests
// it could not revoke. Revocation is monotonic, so partial progress on
// context cancellation is a valid state; already revoked sessions stay revoked.
func (s *Service) RevokeAll(ctx context.Context, principalID, exceptSessionID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.RevokeAll")
	defer span.End()

	exceptHash := ""
	if exceptSessionID != "" {
		exceptHash = token.SHA256Base64URL(exceptSessionID)
	}

	sessions, err := s.storage.ListSessionsByPrincipal(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	now := time.Now()
	var failed []string
	for _, sess := range sessions {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		if sess.IDHash == exceptHash || !sess.Live(now) {
			continue
		}
		if err := s.storage.RevokeSession(ctx, sess.IDHash); err != nil {
			s.logger.Errorf("failed to revoke session %s: %v", sess.IDHash, err)
			failed = append(failed, sess.IDHash)
		}
	}

	return failed, nil
}
