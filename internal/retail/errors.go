//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import "fmt"

// ConfigError reports invalid generation parameters. It is always
// detected before any data is generated.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// ConsistencyError reports an internal defect: a generated row violates
// an invariant or references a row that does not exist. It aborts the
// whole run; no partial dataset is returned.
type ConsistencyError struct {
	Stage     string
	Invariant string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency fault in stage %s: %s", e.Stage, e.Invariant)
}

func consistencyErrorf(stage, format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Stage: stage, Invariant: fmt.Sprintf(format, args...)}
}
