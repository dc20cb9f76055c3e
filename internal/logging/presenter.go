// Copyright (c) 2025 MeetYourAI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	stderrors "errors"
	"fmt"

	"github.com/MeetYourAI/AICoder/internal/errors"
)

// PresentError formats an error for user display with masking.
// Typed errors surface only their message; the underlying cause stays in
// the debug log so the user sees one line per failure.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	var e *errors.E
	if stderrors.As(err, &e) {
		return fmt.Sprintf("%s: %s", context, Mask(e.Message))
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}
