// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package diagram

import (
	"strings"
	"testing"

	"github.com/MeetYourAI/AICoder/internal/design"
)

func TestMermaid(t *testing.T) {
	tests := []struct {
		name     string
		rec      design.Recommendation
		expected string
	}{
		{
			name:     "zero tables emits only the header",
			rec:      design.Recommendation{},
			expected: "erDiagram\n",
		},
		{
			name: "single table single column",
			rec: design.Recommendation{Tables: []design.Table{
				{Name: "Users", Columns: []design.Column{{Name: "id", Type: "int"}}, Relationships: []design.Relationship{}},
			}},
			expected: "erDiagram\n" +
				"    Users {\n" +
				"        int id\n" +
				"    }\n",
		},
		{
			name: "zero columns still emits the entity block",
			rec: design.Recommendation{Tables: []design.Table{
				{Name: "Ghost", Columns: []design.Column{}},
			}},
			expected: "erDiagram\n" +
				"    Ghost {\n" +
				"    }\n",
		},
		{
			name: "nullable carries no marker",
			rec: design.Recommendation{Tables: []design.Table{
				{Name: "Orders", Columns: []design.Column{
					{Name: "id", Type: "int", Nullable: false},
					{Name: "note", Type: "text", Nullable: true},
				}},
			}},
			expected: "erDiagram\n" +
				"    Orders {\n" +
				"        int id\n" +
				"        text note\n" +
				"    }\n",
		},
		{
			name: "relationships follow all entity blocks in table order",
			rec: design.Recommendation{Tables: []design.Table{
				{Name: "Users", Columns: []design.Column{{Name: "id", Type: "int"}}},
				{Name: "Orders", Columns: []design.Column{{Name: "user_id", Type: "int", Nullable: true}}, Relationships: []design.Relationship{{TargetTable: "Users"}}},
				{Name: "Items", Columns: []design.Column{{Name: "order_id", Type: "int"}, {Name: "sku", Type: "varchar"}}, Relationships: []design.Relationship{{TargetTable: "Orders"}, {TargetTable: "Users"}}},
			}},
			expected: "erDiagram\n" +
				"    Users {\n" +
				"        int id\n" +
				"    }\n" +
				"    Orders {\n" +
				"        int user_id\n" +
				"    }\n" +
				"    Items {\n" +
				"        int order_id\n" +
				"        varchar sku\n" +
				"    }\n" +
				"    Users }o--|| Orders : relates\n" +
				"    Orders }o--|| Items : relates\n" +
				"    Users }o--|| Items : relates\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mermaid(tt.rec)
			if got != tt.expected {
				t.Errorf("Mermaid() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMermaidDeterministic(t *testing.T) {
	rec := design.Recommendation{Tables: []design.Table{
		{Name: "Users", Columns: []design.Column{{Name: "id", Type: "int"}, {Name: "email", Type: "varchar"}}},
		{Name: "Orders", Columns: []design.Column{{Name: "user_id", Type: "int"}}, Relationships: []design.Relationship{{TargetTable: "Users"}}},
	}}

	first := Mermaid(rec)
	second := Mermaid(rec)
	if first != second {
		t.Errorf("Mermaid() produced different output for equal input:\n%q\n%q", first, second)
	}
}

func TestMermaidNoRelationshipLineWithoutRelationships(t *testing.T) {
	rec := design.Recommendation{Tables: []design.Table{
		{Name: "Users", Columns: []design.Column{{Name: "id", Type: "int"}}, Relationships: []design.Relationship{}},
		{Name: "Logs", Columns: []design.Column{{Name: "at", Type: "timestamp"}}},
	}}

	out := Mermaid(rec)
	if strings.Contains(out, "}o--||") {
		t.Errorf("Mermaid() = %q, want no relationship lines", out)
	}
}

// Names are emitted verbatim, so identifiers carrying notation characters
// corrupt the output. Pinned here so a future escaping decision shows up as
// a deliberate diff.
func TestMermaidVerbatimNames(t *testing.T) {
	rec := design.Recommendation{Tables: []design.Table{
		{Name: "Bad{Table", Columns: []design.Column{{Name: "a|b", Type: "int"}}},
	}}

	expected := "erDiagram\n" +
		"    Bad{Table {\n" +
		"        int a|b\n" +
		"    }\n"
	if got := Mermaid(rec); got != expected {
		t.Errorf("Mermaid() = %q, want %q", got, expected)
	}
}
