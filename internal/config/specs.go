// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"720h"`

	IdentityAPIURL string `envconfig:"identity_api_url"`

	BillingMode             string        `envconfig:"billing_mode" default:"mock"`
	BillingAPIBase          string        `envconfig:"billing_api_base"`
	BillingAPIVersion       string        `envconfig:"billing_api_version" default:"2024-06-20"`
	BillingAPIKey           string        `envconfig:"billing_api_key"`
	BillingPriceRef         string        `envconfig:"billing_price_ref"`
	BillingTrialDays        int           `envconfig:"billing_trial_days" default:"14"`
	BillingCancelAtTrialEnd bool          `envconfig:"billing_cancel_at_trial_end" default:"true"`
	BillingCallTimeout      time.Duration `envconfig:"billing_call_timeout" default:"10s"`
}
