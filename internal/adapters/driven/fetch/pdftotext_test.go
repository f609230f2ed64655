package fetch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary writes a shell script standing in for pdftotext.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "pdftotext")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0700))
	return path
}

func TestNewPdftotext_Default(t *testing.T) {
	assert.Equal(t, DefaultPdftotext, NewPdftotext("").binary)
	assert.Equal(t, "/opt/bin/pdftotext", NewPdftotext("/opt/bin/pdftotext").binary)
}

func TestPdftotext_Extract(t *testing.T) {
	bin := fakeBinary(t, "cat")
	p := NewPdftotext(bin)

	text, err := p.Extract(context.Background(), []byte("Montag    Dienstag\n"))

	require.NoError(t, err)
	assert.Equal(t, "Montag    Dienstag\n", text)
}

func TestPdftotext_Extract_PassesLayoutFlags(t *testing.T) {
	bin := fakeBinary(t, `echo "$@"`)
	p := NewPdftotext(bin)

	text, err := p.Extract(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "-layout -enc UTF-8 - -\n", text)
}

func TestPdftotext_Extract_Failure(t *testing.T) {
	bin := fakeBinary(t, "echo 'Syntax Error: May not be a PDF file' >&2\nexit 1")
	p := NewPdftotext(bin)

	_, err := p.Extract(context.Background(), []byte("not a pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "May not be a PDF file")
}

func TestPdftotext_Extract_MissingBinary(t *testing.T) {
	p := NewPdftotext(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := p.Extract(context.Background(), []byte("%PDF-1.4"))

	assert.Error(t, err)
}
