// Package terminal provides small terminal utilities such as clearing
// previously printed lines.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines removes text that was previously printed, given its
// total character count (prompt plus user input). The terminal width decides
// how many physical lines the text wrapped into; one extra line accounts for
// the newline the user's Enter produced. Used to scrub sensitive input such
// as DSNs off the screen after it has been read.
func ClearPreviousLines(textLength int) {
	termWidth := 80
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
