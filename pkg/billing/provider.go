// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

var _ ProviderInterface = (*Provider)(nil)

// Provider is the JSON-over-HTTP client for the live billing provider. The
// API base is configurable so local stand-ins can be pointed at.
type Provider struct {
	apiBase    string
	apiVersion string
	apiKey     string
	client     *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewProvider(config *Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Provider {
	p := new(Provider)

	p.apiBase = strings.TrimSuffix(config.APIBase, "/")
	p.apiVersion = config.APIVersion
	p.apiKey = config.APIKey
	p.client = &http.Client{Timeout: config.CallTimeout}

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

type customerRequest struct {
	Metadata map[string]string `json:"metadata"`
}

type subscriptionRequest struct {
	Customer                 string `json:"customer"`
	Price                    string `json:"price"`
	TrialDays                int    `json:"trial_days"`
	OnMissingPaymentTrialEnd string `json:"on_missing_payment_at_trial_end"`
}

type refResponse struct {
	ID string `json:"id"`
}

func (p *Provider) CreateCustomer(ctx context.Context, metadata map[string]string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "billing.Provider.CreateCustomer")
	defer span.End()

	var resp refResponse
	if err := p.post(ctx, "/v1/customers", customerRequest{Metadata: metadata}, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (p *Provider) CreateSubscription(ctx context.Context, req SubscriptionRequest) (string, error) {
	ctx, span := p.tracer.Start(ctx, "billing.Provider.CreateSubscription")
	defer span.End()

	onMissing := "keep"
	if req.CancelAtTrialEnd {
		onMissing = "cancel"
	}

	var resp refResponse
	err := p.post(ctx, "/v1/subscriptions", subscriptionRequest{
		Customer:                 req.CustomerRef,
		Price:                    req.PriceRef,
		TrialDays:                req.TrialDays,
		OnMissingPaymentTrialEnd: onMissing,
	}, &resp)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (p *Provider) CancelSubscription(ctx context.Context, subscriptionRef string) error {
	ctx, span := p.tracer.Start(ctx, "billing.Provider.CancelSubscription")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.apiBase+"/v1/subscriptions/"+subscriptionRef, nil)
	if err != nil {
		return fmt.Errorf("failed to build cancel request: %w", err)
	}

	return p.do(req, nil)
}

func (p *Provider) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiBase+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return p.do(req, out)
}

func (p *Provider) do(req *http.Request, out interface{}) error {
	req.Header.Set("Billing-Version", p.apiVersion)
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}

	return nil
}
