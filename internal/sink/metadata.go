//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/pkg/version"
)

const metadataTable = "retailgen_metadata"

// createMetadataTableSQL creates the metadata table if it doesn't exist.
const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS retailgen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// saveMetadata records the generation parameters alongside the data so a
// loaded database can be identified later.
func saveMetadata(ctx context.Context, pool *pgxpool.Pool, p retail.Profile) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"scale":        p.Scale,
		"days":         fmt.Sprintf("%d", p.Days),
		"seed":         fmt.Sprintf("%d", p.Seed),
		"window_start": p.WindowStart.Format(dateFormat),
		"window_end":   p.WindowEnd.Format(dateFormat),
		"version":      version.Short(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO retailgen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("scale", p.Scale).
		Uint64("seed", p.Seed).
		Msg("Saved metadata")

	return nil
}

// GetAllMetadata retrieves all generation metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM retailgen_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// MetadataExists checks if the metadata table exists.
func MetadataExists(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = $1
        )
    `, metadataTable).Scan(&exists)
	return exists, err
}
