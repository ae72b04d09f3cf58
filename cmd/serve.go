// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canonical/account-service/internal/config"
	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/identity"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring/prometheus"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/authz"
	"github.com/canonical/account-service/pkg/billing"
	"github.com/canonical/account-service/pkg/csrf"
	"github.com/canonical/account-service/pkg/membership"
	"github.com/canonical/account-service/pkg/session"
	"github.com/canonical/account-service/pkg/web"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("account-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	sessionService := session.NewService(s, specs.SessionLifetime, tracer, monitor, logger)
	csrfService := csrf.NewService(s, tracer, monitor, logger)
	membershipService := membership.NewService(s, tracer, monitor, logger)

	billingConfig := billing.NewConfig(
		specs.BillingAPIBase,
		specs.BillingAPIVersion,
		specs.BillingAPIKey,
		specs.BillingMode,
		specs.BillingPriceRef,
		specs.BillingTrialDays,
		specs.BillingCancelAtTrialEnd,
		specs.BillingCallTimeout,
	)
	var provider billing.ProviderInterface
	if billingConfig.Mode == billing.ModeLive {
		provider = billing.NewProvider(billingConfig, tracer, monitor, logger)
		logger.Info("Billing provider calls are enabled")
	} else {
		logger.Info("Billing runs in mock mode")
	}
	billingService := billing.NewService(billingConfig, provider, s, tracer, monitor, logger)

	verifier := identity.NewClient(specs.IdentityAPIURL, tracer, monitor, logger)
	gate := authz.NewGate(sessionService, csrfService, membershipService, tracer, monitor, logger)

	router := web.NewRouter(
		sessionService,
		csrfService,
		membershipService,
		billingService,
		verifier,
		gate,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
