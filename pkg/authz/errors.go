// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import "errors"

var (
	// ErrUnauthenticated means the caller presented no usable session.
	ErrUnauthenticated = errors.New("invalid session")
	// ErrCSRFRejected means the session is fine but the CSRF token is not.
	// It maps to the same external response as ErrUnauthenticated so that
	// callers cannot distinguish the two failure modes.
	ErrCSRFRejected = errors.New("csrf token rejected")
	// ErrUnauthorized means the caller holds no role in the target tenant.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound masks resources outside the caller's tenant scope.
	ErrNotFound = errors.New("not found")
)
