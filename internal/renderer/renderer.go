// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package renderer displays a finished diagram description. The diagram text
// itself is produced elsewhere; implementations only decide how it reaches
// the user.
package renderer

import "github.com/pterm/pterm"

// Renderer consumes a diagram description and shows it to the user.
type Renderer interface {
	// Render displays the diagram text under the given title.
	Render(title, diagram string)
}

// Terminal renders diagrams as a titled box on stdout. The body is the raw
// Mermaid notation; no reflow or highlighting, so the text stays pasteable
// into any Mermaid-aware tool.
type Terminal struct{}

// NewTerminal creates a terminal renderer.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Render prints the diagram inside a padded box.
func (t *Terminal) Render(title, diagram string) {
	styled := pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(title)
	box := pterm.DefaultBox.WithTitle(styled).WithTopPadding(1).WithBottomPadding(1).WithRightPadding(1).WithLeftPadding(1).Sprint(diagram)
	pterm.Println(box)
}
