// Package progressutil wraps the progress bars shown while deriving keys
// and writing keystores. The core packages only ever see the one-method
// Observer interface, so batch logic runs identically with no bar at all.
package progressutil

import (
	"fmt"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// InitializeProgressBar builds a progress bar for numItems units of work
// described by msg. The returned bar satisfies the Observer interface used
// by batch operations.
func InitializeProgressBar(numItems int, msg string) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		numItems,
		progressbar.OptionFullWidth(),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() { fmt.Println() }),
		progressbar.OptionSetDescription(msg),
	)
}
