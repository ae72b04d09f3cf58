// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/authz"
	"github.com/canonical/account-service/pkg/billing"
	"github.com/canonical/account-service/pkg/csrf"
	"github.com/canonical/account-service/pkg/membership"
	"github.com/canonical/account-service/pkg/metrics"
	"github.com/canonical/account-service/pkg/session"
	"github.com/canonical/account-service/pkg/status"
)

func NewRouter(
	sessionService session.ServiceInterface,
	csrfService csrf.ServiceInterface,
	membershipService membership.ServiceInterface,
	billingService billing.ServiceInterface,
	verifier session.CredentialVerifierInterface,
	gate authz.GateInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	authorize := authz.NewMiddleware(gate, tracer, monitor, logger).Authorize()

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	sessionAPI := session.NewAPI(sessionService, verifier, tracer, monitor, logger)
	sessionAPI.RegisterEndpoints(router)
	sessionAPI.RegisterAuthedEndpoints(router, authorize)

	csrf.NewAPI(csrfService, tracer, monitor, logger).RegisterAuthedEndpoints(router, authorize)
	membership.NewAPI(membershipService, gate, tracer, monitor, logger).RegisterAuthedEndpoints(router, authorize)

	billingAPI := billing.NewAPI(billingService, gate, tracer, monitor, logger)
	billingAPI.RegisterEndpoints(router)
	billingAPI.RegisterAuthedEndpoints(router, authorize)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
