// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/session"
)

const (
	// CSRFHeaderName carries the double-submit CSRF token on mutating requests.
	CSRFHeaderName = "X-CSRF-Token"
	// TenantHeaderName selects the tenant scope for the request.
	TenantHeaderName = "X-Tenant-ID"
)

type Middleware struct {
	gate GateInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(gate GateInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		gate:    gate,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Authorize admits the request through the gate and injects the decision into
// the request context. Session and CSRF failures produce the same response so
// the two cannot be told apart from outside.
func (m *Middleware) Authorize() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authz.Middleware.Authorize")
			defer span.End()

			sessionID := ""
			if cookie, err := r.Cookie(session.CookieName); err == nil {
				sessionID = cookie.Value
			}

			decision, err := m.gate.Authorize(
				ctx,
				sessionID,
				r.Header.Get(TenantHeaderName),
				r.Header.Get(CSRFHeaderName),
				isMutating(r.Method),
			)
			if err != nil {
				m.errorResponse(w, err)
				return
			}

			ctx = WithDecision(ctx, decision)
			ctx = session.WithPrincipal(ctx, decision.Principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}

func (m *Middleware) errorResponse(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrCSRFRejected):
		status = http.StatusUnauthorized
		message = ErrUnauthenticated.Error()
	case errors.Is(err, ErrUnauthorized):
		status = http.StatusForbidden
		message = ErrUnauthorized.Error()
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
		message = ErrNotFound.Error()
	default:
		m.logger.Errorf("authorization failed: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}
