// Package textutil holds the helpers shared by the layout-text menu parsers.
//
// Layout text is what `pdftotext -layout` produces: one line per printed row,
// columns aligned with spaces. All positions in this package are rune
// offsets, so umlauts count as one column.
package textutil

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

// Weekdays are the German names of the business days, Monday first.
var Weekdays = [5]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"}

// ClosedMarker is the word that marks a closed day or column.
const ClosedMarker = "geschlossen"

var weekdayPatterns = func() [5]*regexp.Regexp {
	var patterns [5]*regexp.Regexp
	for i, day := range Weekdays {
		patterns[i] = regexp.MustCompile(`(^|\s)` + day + `(\s|$)`)
	}
	return patterns
}()

// Normalise applies NFKC normalisation and unifies line breaks.
// Form feeds between PDF pages become line breaks.
func Normalise(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.ReplaceAll(text, "\f", "\n")
}

// Lines splits normalised text into lines with trailing spaces removed.
func Lines(text string) []string {
	lines := strings.Split(Normalise(text), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return lines
}

// Collapse joins all whitespace-separated fields with single spaces.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RuneIndex returns the rune offset of the first occurrence of substr
// in s, or -1.
func RuneIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}

// Slice returns the runes [start, end) of line. A negative end means the
// end of the line. Offsets beyond the line are clamped.
func Slice(line string, start, end int) string {
	runes := []rune(line)
	if start >= len(runes) {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < 0 || end > len(runes) {
		end = len(runes)
	}
	if end <= start {
		return ""
	}
	return string(runes[start:end])
}

// Header is a row naming the five business days.
type Header struct {
	// Line is the index of the header row.
	Line int

	// Positions holds the rune offset of each weekday name, Monday first.
	Positions [5]int
}

// FindWeekdayHeader returns the first line naming all five business days
// as separate words, in order.
func FindWeekdayHeader(lines []string) (Header, bool) {
	for i, line := range lines {
		header := Header{Line: i}
		ok := true
		for d, pattern := range weekdayPatterns {
			loc := pattern.FindStringIndex(line)
			if loc == nil {
				ok = false
				break
			}
			start := loc[0]
			if line[start] != Weekdays[d][0] {
				start++
			}
			header.Positions[d] = utf8.RuneCountInString(line[:start])
			if d > 0 && header.Positions[d] <= header.Positions[d-1] {
				ok = false
				break
			}
		}
		if ok {
			return header, true
		}
	}
	return Header{}, false
}

// Columns cuts lines into the five weekday columns of header.
// Column i spans [Positions[i], Positions[i+1]); Friday runs to the end of
// the line. The result holds one slice of cell texts per weekday.
func (h Header) Columns(lines []string) [5][]string {
	var cols [5][]string
	for _, line := range lines {
		for d := range h.Positions {
			end := -1
			if d+1 < len(h.Positions) {
				end = h.Positions[d+1]
			}
			cols[d] = append(cols[d], Slice(line, h.Positions[d], end))
		}
	}
	return cols
}

// IsClosed reports whether s contains the closed marker, ignoring case.
func IsClosed(s string) bool {
	return strings.Contains(strings.ToLower(s), ClosedMarker)
}

// ParsePrice converts a German amount such as "3,60" to a decimal.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "€"))
	amount, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: price %q", domain.ErrInvalidInput, s)
	}
	return amount, nil
}

// SplitLabels splits a comma-separated label list.
func SplitLabels(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
