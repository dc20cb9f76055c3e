// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sourcecheck validates a source description locally before a
// generation request is sent to the backend. Checks are cheap and offline;
// the optional database probe is the only one that touches the network.
package sourcecheck

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MeetYourAI/AICoder/internal/design"
	"github.com/MeetYourAI/AICoder/internal/dsn"
	"github.com/MeetYourAI/AICoder/internal/errors"
)

const probeTimeout = 5 * time.Second

// Check validates the request for its source type. csv and prompt sources
// only need a non-empty description; the path or prompt text is meaningful to
// the backend, not to this client, so no local file access happens here.
func Check(req design.SourceRequest) error {
	if strings.TrimSpace(req.ConnectionString) == "" {
		return errors.New(errors.InvalidSource, "a source description is required")
	}
	switch req.SourceType {
	case design.SourceDatabase:
		if err := dsn.Validate(req.ConnectionString); err != nil {
			return errors.Wrap(errors.InvalidSource, err.Error(), err)
		}
	case design.SourceAPI:
		if err := checkURL(req.ConnectionString); err != nil {
			return errors.Wrap(errors.InvalidSource, err.Error(), err)
		}
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid API URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("API URL has no host")
	}
	return nil
}

// Probe opens a short-lived connection to a database source and pings it.
// The DSN is normalized first so special characters in credentials survive.
// Probe failures are advisory; the backend performs its own connect.
func Probe(ctx context.Context, rawDSN string) error {
	normalized, err := dsn.Parse(rawDSN)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	pool, err := pgxpool.New(ctx, normalized)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
