// Package main is the entry point for the AICoder application.
// It provides AI-generated database design recommendations through an
// interactive terminal session.
package main

import (
	"github.com/MeetYourAI/AICoder/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
