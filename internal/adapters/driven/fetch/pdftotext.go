package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
)

// Ensure Pdftotext implements the interface.
var _ driven.TextExtractor = (*Pdftotext)(nil)

// DefaultPdftotext is the poppler binary looked up on PATH.
const DefaultPdftotext = "pdftotext"

// Pdftotext extracts the text of a PDF with poppler's pdftotext,
// keeping the physical layout the column parsers rely on.
type Pdftotext struct {
	binary string
}

// NewPdftotext creates an extractor running binary.
func NewPdftotext(binary string) *Pdftotext {
	if binary == "" {
		binary = DefaultPdftotext
	}
	return &Pdftotext{binary: binary}
}

// Extract pipes content through "pdftotext -layout -enc UTF-8 - -".
func (p *Pdftotext) Extract(ctx context.Context, content []byte) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.binary, "-layout", "-enc", "UTF-8", "-", "-")
	cmd.Stdin = bytes.NewReader(content)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", p.binary, err, msg)
		}
		return "", fmt.Errorf("%s: %w", p.binary, err)
	}
	return stdout.String(), nil
}
