// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/authz"
)

// ProviderEvent is the webhook payload the billing provider posts back.
type ProviderEvent struct {
	Type            string `json:"type"`
	SubscriptionRef string `json:"subscription_ref"`
}

const (
	eventPaymentMethodAttached = "payment_method.attached"
	eventTrialEnded            = "subscription.trial_ended"
)

// PermissionBillingWrite guards membership provisioning.
const PermissionBillingWrite = "billing:write"

type StartMembershipRequest struct {
	BillingAccount string `json:"billing_account"`
}

type StartMembershipResponse struct {
	ID              string `json:"id"`
	TenantID        string `json:"tenant_id"`
	Status          string `json:"status"`
	CustomerRef     string `json:"customer_ref,omitempty"`
	SubscriptionRef string `json:"subscription_ref,omitempty"`
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

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/billing", a.providerEvent)
}

// RegisterAuthedEndpoints mounts the membership lifecycle endpoints behind
// the given middleware.
func (a *API) RegisterAuthedEndpoints(mux *chi.Mux, authorize func(http.Handler) http.Handler) {
	mux.Group(func(r chi.Router) {
		r.Use(authorize)
		r.Post("/api/v0/tenants/{id}/memberships", a.startMembership)
		r.Delete("/api/v0/memberships/{id}", a.cancelMembership)
	})
}

// startMembership provisions a trial subscription for the caller's tenant.
// Callers scoped to another tenant see the target as absent.
func (a *API) startMembership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.startMembership")
	defer span.End()

	decision, ok := authz.GetDecision(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	tenantID := chi.URLParam(r, "id")
	if err := a.gate.ScopeResource(decision, tenantID); err != nil {
		http.Error(w, authz.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	if !decision.HasPermission(PermissionBillingWrite) {
		http.Error(w, authz.ErrUnauthorized.Error(), http.StatusForbidden)
		return
	}

	var req StartMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.BillingAccount == "" {
		http.Error(w, "billing_account is required", http.StatusBadRequest)
		return
	}

	m, err := a.service.StartMembership(ctx, decision.Principal, tenantID, req.BillingAccount)
	if err != nil {
		if errors.Is(err, ErrMembershipExists) {
			http.Error(w, ErrMembershipExists.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, ErrProviderUnavailable) {
			http.Error(w, ErrProviderUnavailable.Error(), http.StatusServiceUnavailable)
			return
		}
		a.logger.Errorf("failed to start membership for tenant %s: %v", tenantID, err)
		http.Error(w, "failed to start membership", http.StatusInternalServerError)
		return
	}

	resp := StartMembershipResponse{
		ID:       m.ID,
		TenantID: m.TenantID,
		Status:   m.Status,
	}
	if m.CustomerRef != nil {
		resp.CustomerRef = *m.CustomerRef
	}
	if m.SubscriptionRef != nil {
		resp.SubscriptionRef = *m.SubscriptionRef
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}

// cancelMembership ends a subscription. Memberships outside the caller's
// tenant scope are reported as absent, not forbidden.
func (a *API) cancelMembership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.cancelMembership")
	defer span.End()

	decision, ok := authz.GetDecision(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	membershipID := chi.URLParam(r, "id")
	m, err := a.service.GetMembership(ctx, membershipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, authz.ErrNotFound.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to load membership %s: %v", membershipID, err)
		http.Error(w, "failed to load membership", http.StatusInternalServerError)
		return
	}

	if err := a.gate.ScopeResource(decision, m.TenantID); err != nil {
		http.Error(w, authz.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	if err := a.service.CancelMembership(ctx, membershipID); err != nil {
		a.logger.Errorf("failed to cancel membership %s: %v", membershipID, err)
		http.Error(w, "failed to cancel membership", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) providerEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.providerEvent")
	defer span.End()

	var event ProviderEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if event.SubscriptionRef == "" {
		http.Error(w, "subscription_ref is required", http.StatusBadRequest)
		return
	}

	var err error
	switch event.Type {
	case eventPaymentMethodAttached:
		err = a.service.HandlePaymentMethodAttached(ctx, event.SubscriptionRef)
	case eventTrialEnded:
		err = a.service.HandleTrialEnded(ctx, event.SubscriptionRef)
	default:
		// Unknown event types are acknowledged so the provider stops retrying.
		w.WriteHeader(http.StatusOK)
		return
	}

	if err != nil {
		a.logger.Errorf("failed to handle billing event %s: %v", event.Type, err)
		http.Error(w, "failed to process event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
