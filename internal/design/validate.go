// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package design

import "fmt"

// Validate checks that a recommendation is well-formed enough to diagram:
// every table is named, carries a columns list (possibly empty), every column
// is named, and every relationship names its target. Zero tables is a valid,
// empty recommendation.
func Validate(rec Recommendation) error {
	for i, tbl := range rec.Tables {
		if tbl.Name == "" {
			return fmt.Errorf("table %d has no name", i)
		}
		if tbl.Columns == nil {
			return fmt.Errorf("table %q has no columns list", tbl.Name)
		}
		for j, col := range tbl.Columns {
			if col.Name == "" {
				return fmt.Errorf("table %q column %d has no name", tbl.Name, j)
			}
		}
		for j, rel := range tbl.Relationships {
			if rel.TargetTable == "" {
				return fmt.Errorf("table %q relationship %d has no target table", tbl.Name, j)
			}
		}
	}
	return nil
}
