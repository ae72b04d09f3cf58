// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"errors"
)

var (
	// ErrSessionInvalid covers unknown, revoked and expired sessions alike.
	// Callers must not distinguish the three to user agents.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrCollisionExhausted is returned when session ID generation keeps
	// colliding. With 256-bit identifiers this indicates a broken entropy
	// source rather than bad luck.
	ErrCollisionExhausted = errors.New("session id collision attempts exhausted")
)
