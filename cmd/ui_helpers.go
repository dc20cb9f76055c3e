package cmd

import (
	"fmt"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// brailleFrames are the spinner frames used while a request is in flight,
// similar to the docker CLI.
var brailleFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// startSpinner starts an area spinner showing the given text and returns a
// function that stops it and removes the line. The cursor is hidden while the
// spinner runs. Safe to call the stop function exactly once.
func startSpinner(text string) func() {
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return func() {}
	}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				area.Update(fmt.Sprintf("%s %s", brailleFrames[i%len(brailleFrames)], text))
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
		area.Stop()
		cursor.Show()
	}
}
