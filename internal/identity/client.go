// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity talks to the external credential service. Password storage
// and verification mechanics live there, not here.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

// ErrInvalidCredentials covers unknown accounts and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

type ClientInterface interface {
	VerifyCredentials(ctx context.Context, email, password string) (*types.Principal, error)
}

type verifyRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyResponse struct {
	PrincipalID string `json:"principal_id"`
	Email       string `json:"email"`
}

type Client struct {
	apiBase string
	client  *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(apiBase string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		apiBase: strings.TrimRight(apiBase, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// VerifyCredentials checks an email and password pair against the credential
// service. Unknown accounts and bad passwords both return
// ErrInvalidCredentials.
func (c *Client) VerifyCredentials(ctx context.Context, email, password string) (*types.Principal, error) {
	ctx, span := c.tracer.Start(ctx, "identity.Client.VerifyCredentials")
	defer span.End()

	body, err := json.Marshal(verifyRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v1/credentials/verify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call credential service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusNotFound:
		return nil, ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("credential service returned %s", resp.Status)
	}

	var verified verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verified); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &types.Principal{ID: verified.PrincipalID, Email: verified.Email}, nil
}
