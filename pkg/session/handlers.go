// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/token"
	"github.com/canonical/account-service/internal/tracing"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	CSRFToken string `json:"csrf_token"`
	ExpiresAt string `json:"expires_at"`
}

type SessionView struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
	Revoked   bool   `json:"revoked"`
	Current   bool   `json:"current"`
}

type RevokeOthersResponse struct {
	Failed []string `json:"failed"`
}

type API struct {
	service  ServiceInterface
	verifier CredentialVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	verifier CredentialVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the unauthenticated auth endpoints.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/auth/login", a.login)
}

// RegisterAuthedEndpoints mounts the endpoints that require an admitted
// session, behind the given middleware.
func (a *API) RegisterAuthedEndpoints(mux *chi.Mux, authorize func(http.Handler) http.Handler) {
	mux.Group(func(r chi.Router) {
		r.Use(authorize)
		r.Post("/api/v0/auth/logout", a.logout)
		r.Get("/api/v0/sessions", a.listSessions)
		r.Delete("/api/v0/sessions/{id}", a.revokeSession)
		r.Post("/api/v0/sessions/revoke-others", a.revokeOthers)
	})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	principal, err := a.verifier.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		// Bad credentials and unknown accounts get the same answer.
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	sess, err := a.service.Create(ctx, principal.ID)
	if err != nil {
		a.logger.Errorf("failed to create session: %v", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginResponse{
		CSRFToken: sess.CSRFToken,
		ExpiresAt: sess.ExpiresAt.Format(time.RFC3339),
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.logout")
	defer span.End()

	sessionID := a.sessionIDFromCookie(r)
	if err := a.service.Revoke(ctx, sessionID); err != nil {
		a.logger.Errorf("failed to revoke session: %v", err)
		http.Error(w, "failed to revoke session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
}

func (a *API) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.listSessions")
	defer span.End()

	principal, ok := GetPrincipal(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	sessions, err := a.service.List(ctx, principal.ID)
	if err != nil {
		a.logger.Errorf("failed to list sessions: %v", err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	currentHash := token.SHA256Base64URL(a.sessionIDFromCookie(r))
	views := make([]SessionView, len(sessions))
	for i, s := range sessions {
		views[i] = SessionView{
			ID:        s.IDHash,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
			ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
			Revoked:   s.RevokedAt != nil,
			Current:   s.IDHash == currentHash,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}

func (a *API) revokeSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.revokeSession")
	defer span.End()

	principal, ok := GetPrincipal(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	// The path parameter is the stored digest as returned by listSessions.
	// Digests not owned by the caller are ignored, so the response does not
	// leak whether a session exists.
	if err := a.service.RevokeOwned(ctx, principal.ID, chi.URLParam(r, "id")); err != nil {
		a.logger.Errorf("failed to revoke session: %v", err)
		http.Error(w, "failed to revoke session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) revokeOthers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.revokeOthers")
	defer span.End()

	principal, ok := GetPrincipal(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	failed, err := a.service.RevokeAll(ctx, principal.ID, a.sessionIDFromCookie(r))
	if err != nil {
		a.logger.Errorf("failed to revoke sessions: %v", err)
		http.Error(w, "failed to revoke sessions", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if len(failed) > 0 {
		status = http.StatusMultiStatus
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(RevokeOthersResponse{Failed: failed})
}

func (a *API) sessionIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
