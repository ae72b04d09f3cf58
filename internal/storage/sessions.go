// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/account-service/internal/types"
)

// CreateSession inserts a session row keyed by the digest of the session ID.
// A digest collision surfaces as ErrDuplicateKey so the caller can regenerate.
func (s *Storage) CreateSession(ctx context.Context, sess *types.Session) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSession")
	defer span.End()

	var created types.Session
	err := s.db.Statement(ctx).
		Insert("sessions").
		Columns("id_hash", "principal_id", "csrf_token", "expires_at").
		Values(sess.IDHash, sess.PrincipalID, sess.CSRFToken, sess.ExpiresAt).
		Suffix("RETURNING id_hash, principal_id, csrf_token, created_at, expires_at, revoked_at").
		QueryRowContext(ctx).
		Scan(&created.IDHash, &created.PrincipalID, &created.CSRFToken, &created.CreatedAt, &created.ExpiresAt, &created.RevokedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetSessionByIDHash(ctx context.Context, idHash string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSessionByIDHash")
	defer span.End()

	var sess types.Session
	err := s.db.Statement(ctx).
		Select("id_hash", "principal_id", "csrf_token", "created_at", "expires_at", "revoked_at").
		From("sessions").
		Where(sq.Eq{"id_hash": idHash}).
		QueryRowContext(ctx).
		Scan(&sess.IDHash, &sess.PrincipalID, &sess.CSRFToken, &sess.CreatedAt, &sess.ExpiresAt, &sess.RevokedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &sess, nil
}

// ListSessionsByPrincipal returns the principal's sessions newest first.
// Ordering among sessions sharing a creation timestamp is unspecified.
func (s *Storage) ListSessionsByPrincipal(ctx context.Context, principalID string) ([]*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSessionsByPrincipal")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id_hash", "principal_id", "csrf_token", "created_at", "expires_at", "revoked_at").
		From("sessions").
		Where(sq.Eq{"principal_id": principalID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*types.Session
	for rows.Next() {
		var sess types.Session
		if err := rows.Scan(&sess.IDHash, &sess.PrincipalID, &sess.CSRFToken, &sess.CreatedAt, &sess.ExpiresAt, &sess.RevokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, &sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sessions, nil
}

// RevokeSession sets revoked_at once. Revoking an unknown or already revoked
// session affects zero rows and is not an error.
func (s *Storage) RevokeSession(ctx context.Context, idHash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeSession")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("sessions").
		Set("revoked_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id_hash": idHash, "revoked_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// UpdateSessionCSRF replaces the CSRF token bound to a live session.
func (s *Storage) UpdateSessionCSRF(ctx context.Context, idHash, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSessionCSRF")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("sessions").
		Set("csrf_token", token).
		Where(sq.Eq{"id_hash": idHash, "revoked_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update csrf token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
