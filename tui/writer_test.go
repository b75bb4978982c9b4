package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableWriter_Field(t *testing.T) {
	var buf bytes.Buffer
	tw := &tableWriter{w: &buf}

	tw.field("Version", "3.11.4")
	tw.field("Sources", []string{"pyvenv.cfg", "interpreter"})
	tw.field("Interpreters", "/env/bin/python")

	require.NoError(t, tw.Err())
	assert.Equal(t,
		"  Version      3.11.4\n"+
			"  Sources      [pyvenv.cfg interpreter]\n"+
			"  Interpreters /env/bin/python\n",
		buf.String())
}

func TestTableWriter_StopsAfterFirstError(t *testing.T) {
	tw := &tableWriter{w: failingWriter{}}

	tw.field("Version", "3.11.4")
	tw.println("ignored")
	tw.printf("%s\n", "ignored")

	assert.EqualError(t, tw.Err(), "closed")
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, DefaultTerminalWidth, TerminalWidth(&buf))
	assert.False(t, IsWriterTerminal(&buf))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultTerminalWidth, TerminalWidth(f))
	assert.False(t, IsWriterTerminal(f))
}
