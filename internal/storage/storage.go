// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/account-service/internal/db"
	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByID")
	defer span.End()

	var p types.Principal
	err := s.db.Statement(ctx).
		Select("id", "email", "created_at").
		From("principals").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	return &p, nil
}
