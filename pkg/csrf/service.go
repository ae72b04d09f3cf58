// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package csrf issues and verifies the anti-forgery token bound 1:1 to a
// session. Tokens rotate on issue and die with their session.
package csrf

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/token"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/session"
)

const tokenBytes = 32

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Issue binds a fresh token to the session, replacing any prior one. Rotation
// on issue prevents fixation of a token captured before authentication.
func (s *Service) Issue(ctx context.Context, sessionID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "csrf.Service.Issue")
	defer span.End()

	t, err := token.GenerateOpaque(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}

	err = s.storage.UpdateSessionCSRF(ctx, token.SHA256Base64URL(sessionID), t)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Unknown or revoked session; nothing to bind a token to.
			return "", session.ErrSessionInvalid
		}
		return "", fmt.Errorf("failed to rotate csrf token: %w", err)
	}

	return t, nil
}

// Verify reports whether submitted equals the token currently bound to the
// still-live session. The comparison is constant time. Missing tokens, dead
// sessions and lookup misses all verify false; only storage faults surface as
// errors, and callers must fail closed on those too.
func (s *Service) Verify(ctx context.Context, sessionID, submitted string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "csrf.Service.Verify")
	defer span.End()

	if submitted == "" {
		return false, nil
	}

	sess, err := s.storage.GetSessionByIDHash(ctx, token.SHA256Base64URL(sessionID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load session: %w", err)
	}

	if !sess.Live(time.Now()) {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(sess.CSRFToken), []byte(submitted)) == 1, nil
}
