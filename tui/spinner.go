package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerWriter struct {
	writer   io.Writer
	interval time.Duration
	err      error
}

func (sw *spinnerWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}

	_, sw.err = fmt.Fprintf(sw.writer, format, args...)
}

// SpinnerOption configures RunWithSpinner.
type SpinnerOption func(*spinnerWriter)

// WithWriter sets the spinner destination. The default is stderr.
func WithWriter(w io.Writer) SpinnerOption {
	return func(c *spinnerWriter) {
		c.writer = w
	}
}

// WithInterval sets the frame interval.
func WithInterval(d time.Duration) SpinnerOption {
	return func(c *spinnerWriter) {
		c.interval = d
	}
}

// RunWithSpinner runs fn while animating message on a terminal. Nothing is
// written when the destination is not a terminal.
func RunWithSpinner[T any](message string, fn func() (T, error), opts ...SpinnerOption) (T, error) {
	writer := spinnerWriter{
		writer:   os.Stderr,
		interval: 100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(&writer)
	}

	if !IsWriterTerminal(writer.writer) {
		return fn()
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(writer.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			frame := spinnerFrames[i%len(spinnerFrames)]
			writer.printf("\033[2K\r%s%s%s %s", Cyan, frame, Reset, message)

			select {
			case <-stop:
				writer.printf("\033[2K\r")
				return
			case <-ticker.C:
			}
		}
	}()

	result, err := fn()

	close(stop)
	wg.Wait()

	if err != nil {
		return result, err
	}

	return result, writer.err
}
