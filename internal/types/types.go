// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Principal is an authenticated identity. Credential material is owned by the
// external credential subsystem and never flows through this service.
type Principal struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// Session is a live authentication context for a principal. The raw session ID
// is handed to the client exactly once; only its SHA-256 digest is persisted.
// RevokedAt moves unset -> set, never back.
type Session struct {
	ID          string     `db:"-"`
	IDHash      string     `db:"id_hash"`
	PrincipalID string     `db:"principal_id"`
	CSRFToken   string     `db:"csrf_token"`
	CreatedAt   time.Time  `db:"created_at"`
	ExpiresAt   time.Time  `db:"expires_at"`
	RevokedAt   *time.Time `db:"revoked_at"`
}

// Live reports whether the session is neither revoked nor expired at now.
func (s *Session) Live(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	Enabled   bool      `db:"enabled"`
}

type Role struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Permissions []string   `db:"permissions"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// AccountTenantLink records that a principal holds a role in a tenant.
// Links are soft-deleted at offboarding to preserve audit history.
type AccountTenantLink struct {
	ID          string     `db:"id"`
	PrincipalID string     `db:"principal_id"`
	TenantID    string     `db:"tenant_id"`
	RoleID      string     `db:"role_id"`
	CreatedAt   time.Time  `db:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// MembershipStatus values for the subscription state machine.
// Canceled is terminal.
const (
	MembershipTrialing = "trialing"
	MembershipActive   = "active"
	MembershipCanceled = "canceled"
)

// Membership is the billing record backing a tenant's entitlement.
type Membership struct {
	ID              string     `db:"id"`
	TenantID        string     `db:"tenant_id"`
	CustomerRef     *string    `db:"customer_ref"`
	SubscriptionRef *string    `db:"subscription_ref"`
	Status          string     `db:"status"`
	CreatedAt       time.Time  `db:"created_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}
