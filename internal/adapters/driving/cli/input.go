package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

// weekPattern matches the calendar week in publication file names,
// e.g. "Garching-Speiseplan_KW44_2017.txt" or "menu_kw_47_2018.txt".
var weekPattern = regexp.MustCompile(`(?i)kw_?(\d{1,2})_(\d{4})`)

// inputFlags describe a local publication.
type inputFlags struct {
	location string
	year     int
	week     int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.location, "location", "l", "", "canteen id (required for studentenwerk)")
	cmd.Flags().IntVar(&f.year, "year", 0, "ISO year of a text publication (default from file name)")
	cmd.Flags().IntVar(&f.week, "week", 0, "ISO week of a text publication (default from file name)")
}

// WeekFromFilename extracts the ISO week encoded in a file name.
func WeekFromFilename(name string) (domain.WeekKey, bool) {
	m := weekPattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return domain.WeekKey{}, false
	}
	week, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	return domain.WeekKey{Year: year, Number: week}, true
}

// readDocument loads path as a publication of source.
func readDocument(source, path string, flags inputFlags) (*domain.RawDocument, error) {
	if !slices.Contains(domain.Sources(), source) {
		return nil, fmt.Errorf("source %q: %w", source, domain.ErrUnsupportedType)
	}

	raw := &domain.RawDocument{
		Source:   source,
		Location: flags.location,
		URI:      path,
		MIMEType: "text/plain",
	}

	if source == domain.SourceStudentenwerk {
		if flags.location == "" {
			return nil, fmt.Errorf("--location is required for %s: %w", source, domain.ErrInvalidInput)
		}
		raw.MIMEType = "text/html"
	} else {
		key, ok := domain.WeekKey{Year: flags.year, Number: flags.week}, flags.year > 0 && flags.week > 0
		if !ok {
			key, ok = WeekFromFilename(path)
		}
		if !ok {
			return nil, fmt.Errorf("cannot tell the week of %s, use --year and --week: %w", path, domain.ErrInvalidInput)
		}
		raw.Year = key.Year
		raw.Week = key.Number
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	raw.Content = content
	return raw, nil
}

// writeJSON writes v to w, indented when w is a terminal.
func writeJSON(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)
	if isTerminal(w) {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
