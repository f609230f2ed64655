// Package fmi parses the weekly menu of the FMI Bistro in Garching.
//
// The publication is a PDF converted with `pdftotext -layout`: a row naming
// the five weekdays followed by one column of dishes per weekday. Each dish
// ends with its price ("Gulasch (Gl,Sl) € 3,60"). An optional weekly special
// ("Aktion der Woche: ...") above the header is offered on every open day.
package fmi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eat-cli/internal/logger"
	"github.com/custodia-labs/eat-cli/internal/parsers/textutil"
)

// Ensure Parser implements the interface.
var _ driven.MenuParser = (*Parser)(nil)

// dishPattern matches "<name> [(<labels>)] € <price>".
var dishPattern = regexp.MustCompile(`(.+?)\s*(?:\(([^()]*)\))?\s*€\s*(\d+,\d{2})`)

// Parser handles FMI Bistro layout text.
type Parser struct{}

// New creates a new FMI Bistro parser.
func New() *Parser {
	return &Parser{}
}

// Source returns the source name.
func (p *Parser) Source() string {
	return domain.SourceFMIBistro
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

// GetMenus extracts one menu per open weekday of the given ISO week.
func (p *Parser) GetMenus(text string, year, week int) ([]domain.Menu, error) {
	lines := textutil.Lines(text)

	header, ok := textutil.FindWeekdayHeader(lines)
	if !ok {
		return nil, fmt.Errorf("%w: fmi bistro: no weekday header", domain.ErrInvalidInput)
	}

	special, hasSpecial := weeklySpecial(lines[:header.Line])

	var menus []domain.Menu
	for i, column := range header.Columns(lines[header.Line+1:]) {
		date, err := domain.GetDate(year, week, i+1)
		if err != nil {
			return nil, err
		}

		text := textutil.Collapse(strings.Join(column, " "))
		if textutil.IsClosed(text) {
			logger.Debug("fmi bistro: %s closed", date.Format(domain.DateLayout))
			continue
		}

		dishes := parseDishes(text)
		if len(dishes) == 0 {
			logger.Debug("fmi bistro: no dishes on %s", date.Format(domain.DateLayout))
			continue
		}
		if hasSpecial {
			dishes = append([]domain.Dish{special}, dishes...)
		}
		menus = append(menus, domain.NewMenu(date, domain.SourceFMIBistro, dishes))
	}
	return menus, nil
}

// weeklySpecial finds the "Aktion ...: <dish>" line above the header.
func weeklySpecial(lines []string) (domain.Dish, bool) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Aktion") {
			continue
		}
		_, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if dishes := parseDishes(textutil.Collapse(rest)); len(dishes) > 0 {
			return dishes[0], true
		}
	}
	return domain.Dish{}, false
}

func parseDishes(text string) []domain.Dish {
	var dishes []domain.Dish
	for _, m := range dishPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		price, err := textutil.ParsePrice(m[3])
		if err != nil {
			continue
		}
		dishes = append(dishes, domain.NewDish(
			name,
			domain.Prices{domain.AudienceOther: price},
			textutil.SplitLabels(m[2]),
		))
	}
	return dishes
}
