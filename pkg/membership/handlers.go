// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/authz"
	"github.com/canonical/account-service/pkg/session"
)

// PermissionMembersWrite guards tenant link administration.
const PermissionMembersWrite = "members:write"

type RoleView struct {
	TenantID    string   `json:"tenant_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type MembershipView struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type GrantRequest struct {
	PrincipalID string `json:"principal_id"`
	RoleID      string `json:"role_id"`
}

type API struct {
	service ServiceInterface
	gate    authz.GateInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	gate authz.GateInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		gate:    gate,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterAuthedEndpoints mounts the self-service read endpoints and the
// tenant link administration endpoints behind the given middleware.
func (a *API) RegisterAuthedEndpoints(mux *chi.Mux, authorize func(http.Handler) http.Handler) {
	mux.Group(func(r chi.Router) {
		r.Use(authorize)
		r.Get("/api/v0/me/roles", a.myRoles)
		r.Get("/api/v0/me/memberships", a.myMemberships)
		r.Post("/api/v0/tenants/{id}/links", a.grant)
		r.Delete("/api/v0/tenants/{id}/links/{principalID}", a.revokeGrant)
	})
}

// adminDecision loads the caller's decision and checks tenant scope plus the
// members:write grant. Out-of-scope tenants are reported as absent.
func (a *API) adminDecision(w http.ResponseWriter, r *http.Request, tenantID string) (*authz.Decision, bool) {
	decision, ok := authz.GetDecision(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return nil, false
	}

	if err := a.gate.ScopeResource(decision, tenantID); err != nil {
		http.Error(w, authz.ErrNotFound.Error(), http.StatusNotFound)
		return nil, false
	}

	if !decision.HasPermission(PermissionMembersWrite) {
		http.Error(w, authz.ErrUnauthorized.Error(), http.StatusForbidden)
		return nil, false
	}

	return decision, true
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.grant")
	defer span.End()

	tenantID := chi.URLParam(r, "id")
	if _, ok := a.adminDecision(w, r, tenantID); !ok {
		return
	}

	var req GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.PrincipalID == "" || req.RoleID == "" {
		http.Error(w, "principal_id and role_id are required", http.StatusBadRequest)
		return
	}

	link, err := a.service.Grant(ctx, req.PrincipalID, tenantID, req.RoleID)
	if err != nil {
		if errors.Is(err, ErrAlreadyLinked) {
			http.Error(w, ErrAlreadyLinked.Error(), http.StatusConflict)
			return
		}
		a.logger.Errorf("failed to grant link: %v", err)
		http.Error(w, "failed to grant link", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(link)
}

func (a *API) revokeGrant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.revokeGrant")
	defer span.End()

	tenantID := chi.URLParam(r, "id")
	if _, ok := a.adminDecision(w, r, tenantID); !ok {
		return
	}

	if err := a.service.RevokeGrant(ctx, chi.URLParam(r, "principalID"), tenantID); err != nil {
		a.logger.Errorf("failed to revoke link: %v", err)
		http.Error(w, "failed to revoke link", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) myRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.myRoles")
	defer span.End()

	principal, ok := session.GetPrincipal(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	roles, err := a.service.RolesForPrincipal(ctx, principal.ID)
	if err != nil {
		a.logger.Errorf("failed to resolve roles: %v", err)
		http.Error(w, "failed to resolve roles", http.StatusInternalServerError)
		return
	}

	views := make([]RoleView, 0, len(roles))
	for tenantID, role := range roles {
		views = append(views, RoleView{
			TenantID:    tenantID,
			Role:        role.Name,
			Permissions: role.Permissions,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}

func (a *API) myMemberships(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.myMemberships")
	defer span.End()

	principal, ok := session.GetPrincipal(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	memberships, err := a.service.MembershipsForPrincipal(ctx, principal.ID)
	if err != nil {
		a.logger.Errorf("failed to resolve memberships: %v", err)
		http.Error(w, "failed to resolve memberships", http.StatusInternalServerError)
		return
	}

	views := make([]MembershipView, len(memberships))
	for i, m := range memberships {
		views[i] = MembershipView{
			ID:        m.ID,
			TenantID:  m.TenantID,
			Status:    m.Status,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}
