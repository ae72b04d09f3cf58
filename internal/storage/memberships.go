// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/account-service/internal/types"
)

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var created types.Membership
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "customer_ref", "subscription_ref", "status").
		Values(id.String(), m.TenantID, m.CustomerRef, m.SubscriptionRef, m.Status).
		Suffix("RETURNING id, tenant_id, customer_ref, subscription_ref, status, created_at, deleted_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.CustomerRef, &created.SubscriptionRef, &created.Status, &created.CreatedAt, &created.DeletedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetMembershipByID(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByID")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"id": id, "deleted_at": nil})
}

func (s *Storage) GetMembershipBySubscriptionRef(ctx context.Context, ref string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipBySubscriptionRef")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"subscription_ref": ref, "deleted_at": nil})
}

func (s *Storage) getMembership(ctx context.Context, where sq.Eq) (*types.Membership, error) {
	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "customer_ref", "subscription_ref", "status", "created_at", "deleted_at").
		From("memberships").
		Where(where).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.CustomerRef, &m.SubscriptionRef, &m.Status, &m.CreatedAt, &m.DeletedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// ListMembershipsByPrincipal returns memberships reachable through the
// principal's non-deleted tenant links, in link creation order. A membership
// shared by several linked tenants appears once per link; deduplication is the
// resolver's job.
func (s *Storage) ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByPrincipal")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.id", "m.tenant_id", "m.customer_ref", "m.subscription_ref", "m.status", "m.created_at", "m.deleted_at").
		From("memberships m").
		Join("account_tenant_links l ON l.tenant_id = m.tenant_id").
		Where(sq.Eq{
			"l.principal_id": principalID,
			"l.deleted_at":   nil,
			"m.deleted_at":   nil,
		}).
		OrderBy("l.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.CustomerRef, &m.SubscriptionRef, &m.Status, &m.CreatedAt, &m.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

func (s *Storage) UpdateMembershipStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembershipStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", status).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update membership status: %w", err)
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

// SoftDeleteMembership marks the membership canceled and deleted in one write.
// Cancellation of the local row never depends on the remote provider outcome.
func (s *Storage) SoftDeleteMembership(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteMembership")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", types.MembershipCanceled).
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to soft-delete membership: %w", err)
	}

	return nil
}

func (s *Storage) UpdateMembershipRefs(ctx context.Context, id, customerRef, subscriptionRef string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembershipRefs")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("customer_ref", customerRef).
		Set("subscription_ref", subscriptionRef).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update membership refs: %w", err)
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
