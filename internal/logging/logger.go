// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Debug output goes to stderr
// so it never interleaves with the terminal UI on stdout. Without verbose
// the logger is disabled entirely.
func Setup(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if !verbose {
		logger = logger.Level(zerolog.Disabled)
	}
	log.Logger = logger
}
