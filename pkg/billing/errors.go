// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"errors"
)

var (
	// ErrProviderUnavailable means live mode is selected but the provider is
	// not configured. Provisioning cannot proceed; cancellation degrades to
	// best effort instead.
	ErrProviderUnavailable = errors.New("billing provider unavailable")

	// ErrInvalidTransition rejects membership status transitions outside the
	// trialing -> active -> canceled machine. Canceled is terminal.
	ErrInvalidTransition = errors.New("invalid membership status transition")

	// ErrMembershipExists means the tenant already has a live membership.
	// The partial unique index on live tenant rows enforces this.
	ErrMembershipExists = errors.New("tenant already has a live membership")
)
