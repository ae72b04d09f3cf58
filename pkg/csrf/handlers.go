// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package csrf

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/session"
)

type TokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterAuthedEndpoints mounts the token rotation endpoint behind the given
// middleware.
func (a *API) RegisterAuthedEndpoints(mux *chi.Mux, authorize func(http.Handler) http.Handler) {
	mux.Group(func(r chi.Router) {
		r.Use(authorize)
		r.Get("/api/v0/auth/csrf", a.rotate)
	})
}

// rotate issues a fresh token for the current session, replacing the stored
// one.
func (a *API) rotate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "csrf.API.rotate")
	defer span.End()

	sessionID := ""
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		sessionID = cookie.Value
	}

	rotated, err := a.service.Issue(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionInvalid) {
			http.Error(w, session.ErrSessionInvalid.Error(), http.StatusUnauthorized)
			return
		}
		a.logger.Errorf("failed to rotate csrf token: %v", err)
		http.Error(w, "failed to rotate csrf token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(TokenResponse{CSRFToken: rotated})
}
