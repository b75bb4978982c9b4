package tui

import (
	"fmt"
	"io"
)

// fieldLabelWidth is the label column of key/value rows such as
// "  Executable   /env/bin/python".
const fieldLabelWidth = 12

// tableWriter writes table output and keeps the first write error. Once a
// write fails the remaining output of the render is dropped.
type tableWriter struct {
	w   io.Writer
	err error
}

func (tw *tableWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *tableWriter) println(args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintln(tw.w, args...)
}

// field writes an indented key/value row with the label padded to a fixed column.
func (tw *tableWriter) field(label string, value any) {
	tw.printf("  %s %v\n", PadRight(label, fieldLabelWidth), value)
}

// Err returns the first write error, if any.
func (tw *tableWriter) Err() error {
	return tw.err
}
