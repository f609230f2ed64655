// Package mediziner parses the weekly menu of the Mediziner Mensa at the
// Klinikum rechts der Isar.
//
// The layout text has a heading row (soup, main course) above a line of
// asterisks, followed by one block per day starting with "Montag, 29.10.2018".
// Within a block the soup is the left column and the priced main courses
// the right column.
package mediziner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eat-cli/internal/logger"
	"github.com/custodia-labs/eat-cli/internal/parsers/textutil"
)

// Ensure Parser implements the interface.
var _ driven.MenuParser = (*Parser)(nil)

var (
	blockPattern   = regexp.MustCompile(`^\s*(Montag|Dienstag|Mittwoch|Donnerstag|Freitag|Samstag|Sonntag),\s*\d{1,2}\.\d{1,2}\.\d{4}`)
	headingPattern = regexp.MustCompile(`\S+(?: \S+)*`)
	mainPattern    = regexp.MustCompile(`(.+?)\s+(\d+,\d{2})\s*€`)
	labelPattern   = regexp.MustCompile(`^(?:[A-Z]{1,2}|[0-9]{1,2})(?:,(?:[A-Z]{1,2}|[0-9]{1,2}))*$`)
)

var weekdayIndex = map[string]int{
	"Montag":     1,
	"Dienstag":   2,
	"Mittwoch":   3,
	"Donnerstag": 4,
	"Freitag":    5,
	"Samstag":    6,
	"Sonntag":    7,
}

// Parser handles Mediziner Mensa layout text.
type Parser struct{}

// New creates a new Mediziner Mensa parser.
func New() *Parser {
	return &Parser{}
}

// Source returns the source name.
func (p *Parser) Source() string {
	return domain.SourceMedizinerMensa
}

// SupportedMIMETypes returns the MIME types this parser handles.
func (p *Parser) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Parse extracts the menus of a raw text document.
func (p *Parser) Parse(raw *domain.RawDocument) ([]domain.Menu, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	return p.GetMenus(string(raw.Content), raw.Year, raw.Week)
}

type block struct {
	weekday int
	lines   []string
}

// GetMenus extracts one menu per open business day of the given ISO week.
// Weekend blocks are ignored.
func (p *Parser) GetMenus(text string, year, week int) ([]domain.Menu, error) {
	lines := textutil.Lines(text)

	sep := -1
	for i, line := range lines {
		if isSeparator(line) {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, fmt.Errorf("%w: mediziner mensa: no separator line", domain.ErrInvalidInput)
	}

	mainsAt, err := mainsColumn(lines[:sep])
	if err != nil {
		return nil, err
	}

	blocks := splitBlocks(lines[sep+1:])
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: mediziner mensa: no weekday blocks", domain.ErrInvalidInput)
	}

	var menus []domain.Menu
	for _, b := range blocks {
		if b.weekday > 5 {
			continue
		}
		date, err := domain.GetDate(year, week, b.weekday)
		if err != nil {
			return nil, err
		}

		if textutil.IsClosed(strings.Join(b.lines, " ")) {
			logger.Debug("mediziner mensa: %s closed", date.Format(domain.DateLayout))
			continue
		}

		dishes := parseBlock(b.lines, mainsAt)
		if len(dishes) == 0 {
			logger.Debug("mediziner mensa: no dishes on %s", date.Format(domain.DateLayout))
			continue
		}
		menus = append(menus, domain.NewMenu(date, domain.SourceMedizinerMensa, dishes))
	}
	return menus, nil
}

func isSeparator(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) >= 3 && strings.Trim(line, "*") == ""
}

// mainsColumn returns the rune offset of the second column heading in the
// last non-empty line above the separator.
func mainsColumn(lines []string) (int, error) {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		locs := headingPattern.FindAllStringIndex(lines[i], -1)
		if len(locs) < 2 {
			break
		}
		return utf8.RuneCountInString(lines[i][:locs[1][0]]), nil
	}
	return 0, fmt.Errorf("%w: mediziner mensa: no column headings", domain.ErrInvalidInput)
}

// splitBlocks groups lines into day blocks. The date prefix of the first
// line is blanked so the columns stay aligned.
func splitBlocks(lines []string) []block {
	var blocks []block
	for _, line := range lines {
		if isSeparator(line) {
			break
		}
		if loc := blockPattern.FindStringSubmatchIndex(line); loc != nil {
			prefix := line[:loc[1]]
			blocks = append(blocks, block{
				weekday: weekdayIndex[line[loc[2]:loc[3]]],
				lines:   []string{strings.Repeat(" ", utf8.RuneCountInString(prefix)) + line[loc[1]:]},
			})
			continue
		}
		if len(blocks) > 0 {
			blocks[len(blocks)-1].lines = append(blocks[len(blocks)-1].lines, line)
		}
	}
	return blocks
}

func parseBlock(lines []string, mainsAt int) []domain.Dish {
	var soup, mains []string
	for _, line := range lines {
		soup = append(soup, textutil.Slice(line, 0, mainsAt))
		mains = append(mains, textutil.Slice(line, mainsAt, -1))
	}

	var dishes []domain.Dish
	if name := textutil.Collapse(strings.Join(soup, " ")); name != "" {
		name, labels := splitLabels(name)
		dishes = append(dishes, domain.NewDish(name, nil, labels))
	}

	for _, m := range mainPattern.FindAllStringSubmatch(textutil.Collapse(strings.Join(mains, " ")), -1) {
		name, labels := splitLabels(strings.TrimSpace(m[1]))
		if name == "" {
			continue
		}
		price, err := textutil.ParsePrice(m[2])
		if err != nil {
			continue
		}
		dishes = append(dishes, domain.NewDish(name, domain.Prices{domain.AudienceOther: price}, labels))
	}
	return dishes
}

// splitLabels strips trailing label tokens such as "S" or "2,3" from name.
func splitLabels(name string) (string, []string) {
	fields := strings.Fields(name)
	var labels []string
	for len(fields) > 1 && labelPattern.MatchString(fields[len(fields)-1]) {
		labels = append(labels, strings.Split(fields[len(fields)-1], ",")...)
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " "), labels
}
