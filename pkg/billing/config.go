// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"time"
)

type Mode string

const (
	// ModeMock bypasses the billing provider entirely; refs are synthesized
	// locally and no network calls are made. Active outside production.
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

// Config is resolved once at process start and passed into the service.
type Config struct {
	APIBase    string
	APIVersion string
	APIKey     string
	Mode       Mode

	PriceRef         string
	TrialDays        int
	CancelAtTrialEnd bool
	CallTimeout      time.Duration
}

func NewConfig(apiBase, apiVersion, apiKey, mode, priceRef string, trialDays int, cancelAtTrialEnd bool, callTimeout time.Duration) *Config {
	c := new(Config)

	c.APIBase = apiBase
	c.APIVersion = apiVersion
	c.APIKey = apiKey
	c.Mode = Mode(mode)
	c.PriceRef = priceRef
	c.TrialDays = trialDays
	c.CancelAtTrialEnd = cancelAtTrialEnd
	c.CallTimeout = callTimeout

	return c
}
