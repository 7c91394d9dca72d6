//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sink persists an assembled retail dataset. Persistence is
// decoupled from generation: a sink receives a fully validated dataset
// and may be retried without regenerating.
package sink

import (
	"context"

	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

// Writer persists all seven tables of a dataset.
type Writer interface {
	Write(ctx context.Context, d *retail.Dataset) error
}
