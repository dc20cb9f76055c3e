// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package diagram converts a schema recommendation into Mermaid
// entity-relationship notation, the text format the renderer consumes.
package diagram

import (
	"strings"

	"github.com/MeetYourAI/AICoder/internal/design"
)

const (
	header      = "erDiagram"
	cardinality = "}o--||"
	label       = "relates"
)

// Mermaid renders a recommendation as an erDiagram block. Output is
// deterministic: tables and columns are emitted in input order, relationship
// lines follow after all entity blocks, again in input order. Every
// relationship uses the same zero-or-more-to-exactly-one cardinality and the
// same label regardless of its real semantics. Table and column names are
// emitted verbatim.
func Mermaid(rec design.Recommendation) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, tbl := range rec.Tables {
		b.WriteString("    " + tbl.Name + " {\n")
		for _, col := range tbl.Columns {
			b.WriteString("        " + col.Type + " " + col.Name + "\n")
		}
		b.WriteString("    }\n")
	}
	for _, tbl := range rec.Tables {
		for _, rel := range tbl.Relationships {
			b.WriteString("    " + rel.TargetTable + " " + cardinality + " " + tbl.Name + " : " + label + "\n")
		}
	}
	return b.String()
}
