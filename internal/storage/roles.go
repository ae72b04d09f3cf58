// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/account-service/internal/types"
)

// RoleLink is a joined row of a non-deleted account-tenant link and its
// non-deleted role.
type RoleLink struct {
	LinkID   string
	TenantID string
	Role     types.Role
}

func (s *Storage) CreateLink(ctx context.Context, link *types.AccountTenantLink) (*types.AccountTenantLink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLink")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate link ID: %w", err)
	}

	var created types.AccountTenantLink
	err = s.db.Statement(ctx).
		Insert("account_tenant_links").
		Columns("id", "principal_id", "tenant_id", "role_id").
		Values(id.String(), link.PrincipalID, link.TenantID, link.RoleID).
		Suffix("RETURNING id, principal_id, tenant_id, role_id, created_at, deleted_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.PrincipalID, &created.TenantID, &created.RoleID, &created.CreatedAt, &created.DeletedAt)

	if err != nil {
		// The partial unique index on (principal_id, tenant_id) WHERE
		// deleted_at IS NULL rejects a second live link for the same pair.
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}

	return &created, nil
}

// SoftDeleteLink marks the live link for (principal, tenant) as deleted.
// The row is kept for audit.
func (s *Storage) SoftDeleteLink(ctx context.Context, principalID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteLink")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("account_tenant_links").
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"principal_id": principalID,
			"tenant_id":    tenantID,
			"deleted_at":   nil,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to soft-delete link: %w", err)
	}

	return nil
}

// ListRoleLinksByPrincipal joins the principal's non-deleted links to
// non-deleted roles. The soft-delete filter on both hops is load-bearing:
// an offboarded link or retired role must never contribute a grant.
// Rows come back in link creation order so duplicate handling upstream is
// deterministic.
func (s *Storage) ListRoleLinksByPrincipal(ctx context.Context, principalID string) ([]*RoleLink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleLinksByPrincipal")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("l.id", "l.tenant_id", "r.id", "r.name", "r.permissions", "r.deleted_at").
		From("account_tenant_links l").
		Join("roles r ON l.role_id = r.id").
		Where(sq.Eq{
			"l.principal_id": principalID,
			"l.deleted_at":   nil,
			"r.deleted_at":   nil,
		}).
		OrderBy("l.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role links: %w", err)
	}
	defer rows.Close()

	var links []*RoleLink
	for rows.Next() {
		var rl RoleLink
		var perms []byte
		if err := rows.Scan(&rl.LinkID, &rl.TenantID, &rl.Role.ID, &rl.Role.Name, &perms, &rl.Role.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role link: %w", err)
		}
		rl.Role.Permissions = decodePermissions(perms)
		links = append(links, &rl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return links, nil
}

// decodePermissions unmarshals the jsonb permissions column, tolerating NULL.
func decodePermissions(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var perms []string
	if err := json.Unmarshal(raw, &perms); err != nil {
		return nil
	}
	return perms
}
