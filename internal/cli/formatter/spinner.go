package formatter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// StartSpinner animates message on the current line of out until the
// returned stop function runs. stop clears the line and is idempotent. The
// frames match the TUI's spinner so both surfaces look the same.
func StartSpinner(out io.Writer, message string) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	frames := spinner.MiniDot

	go func() {
		defer close(done)
		tick := time.NewTicker(frames.FPS)
		defer tick.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(out, "\r  %s %s", StylePurple.Render(frames.Frames[i%len(frames.Frames)]), Dim(message))
			select {
			case <-ctx.Done():
				fmt.Fprint(out, "\r\033[K")
				return
			case <-tick.C:
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
