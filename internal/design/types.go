// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package design holds the wire types exchanged with the MeetYourAI design
// service: the source description a user submits and the schema
// recommendation the backend returns. Field names follow the JSON contract.
package design

import "fmt"

// SourceType identifies what kind of input the design service works from.
type SourceType string

const (
	SourceCSV      SourceType = "csv"
	SourceAPI      SourceType = "api"
	SourcePrompt   SourceType = "prompt"
	SourceDatabase SourceType = "database"
)

// ParseSourceType validates a user-supplied source type string.
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(s) {
	case SourceCSV, SourceAPI, SourcePrompt, SourceDatabase:
		return SourceType(s), nil
	}
	return "", fmt.Errorf("unknown source type %q (expected csv, api, prompt, or database)", s)
}

// SourceRequest describes the input a design should be generated from.
type SourceRequest struct {
	SourceType       SourceType `json:"sourceType"`
	ConnectionString string     `json:"connectionString"`
}

// SourceConfig carries the per-type view of the connection string. Path is
// present only for csv sources and URL only for api sources; for every other
// source type both fields are omitted from the payload entirely.
type SourceConfig struct {
	Path *string `json:"path,omitempty"`
	URL  *string `json:"url,omitempty"`
}

// Config derives the SourceConfig for the request per the backend contract.
func (r SourceRequest) Config() SourceConfig {
	switch r.SourceType {
	case SourceCSV:
		p := r.ConnectionString
		return SourceConfig{Path: &p}
	case SourceAPI:
		u := r.ConnectionString
		return SourceConfig{URL: &u}
	}
	return SourceConfig{}
}

// Recommendation is the backend-produced schema description. Tables, columns
// and relationships keep their response order; the diagram output depends on it.
type Recommendation struct {
	Tables []Table `json:"tables"`
}

// Table is one recommended entity with its columns and outgoing relationships.
type Table struct {
	Name          string         `json:"name"`
	Columns       []Column       `json:"columns"`
	Relationships []Relationship `json:"relationships,omitempty"`
}

// Column is a single field of a table. Nullable is carried for completeness;
// the diagram notation has no marker for it.
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// Relationship points at the table this table relates to.
type Relationship struct {
	TargetTable string `json:"targetTable"`
}
