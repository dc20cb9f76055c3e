// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dsn parses, validates and normalizes PostgreSQL connection strings.
// Database sources are described by a DSN; this package checks them locally
// before a generation request is sent, and produces the normalized form used
// for connectivity probes.
package dsn

import "fmt"

// Info contains the fields parsed out of a connection string.
type Info struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Params   map[string]string
	Original string
}

// String returns the original connection string.
func (i *Info) String() string {
	return i.Original
}

// ParseError represents an error that occurred during DSN parsing.
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid DSN format: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid DSN format: %s", e.Reason)
}

// NewParseError creates a new ParseError.
func NewParseError(dsn, reason, hint string) *ParseError {
	return &ParseError{
		DSN:    dsn,
		Reason: reason,
		Hint:   hint,
	}
}

// Parse parses a PostgreSQL DSN and returns it in normalized form with
// user and password URL-encoded. This is the main entry point for DSN
// handling.
func Parse(dsn string) (string, error) {
	info, err := ParseInfo(dsn)
	if err != nil {
		return "", err
	}
	return normalize(info), nil
}

// Validate checks a DSN without normalizing it.
func Validate(dsn string) error {
	info, err := ParseInfo(dsn)
	if err != nil {
		return err
	}
	if !numericPort(info.Port) {
		return NewParseError(dsn, fmt.Sprintf("invalid port number: %s", info.Port), "port must be numeric")
	}
	return nil
}
