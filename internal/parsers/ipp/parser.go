// Package ipp parses the weekly menu of the IPP Bistro in Garching.
//
// Below the weekday header every column starts with the soup notice
// ("Tagessuppe siehe Aushang" / "Preis ab ...") followed by the dishes, each
// ending with its price ("Pasta Arrabiata 3,50 €"). A closed day shows
// "geschlossen" in place of the soup notice or merged into the
// "Überraschungsmenü" heading.
package ipp

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

const (
	soupPriceMarker = "Preis ab"
	surpriseHeading = "Überraschungsmenü"
)

// dishPattern matches "<name> <price> €".
var dishPattern = regexp.MustCompile(`(.+?)\s+(\d+,\d{2})\s*€`)

// Parser handles IPP Bistro layout text.
type Parser struct{}

// New creates a new IPP Bistro parser.
func New() *Parser {
	return &Parser{}
}

// Source returns the source name.
func (p *Parser) Source() string {
	return domain.SourceIPPBistro
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
		return nil, fmt.Errorf("%w: ipp bistro: no weekday header", domain.ErrInvalidInput)
	}
	body := lines[header.Line+1:]

	// Dishes start below the soup price row.
	start := 0
	for i, line := range body {
		if strings.Contains(line, soupPriceMarker) {
			start = i + 1
			break
		}
	}

	all := header.Columns(body)
	dishCols := header.Columns(body[start:])

	var menus []domain.Menu
	for i := range all {
		date, err := domain.GetDate(year, week, i+1)
		if err != nil {
			return nil, err
		}

		if textutil.IsClosed(strings.Join(all[i], " ")) {
			logger.Debug("ipp bistro: %s closed", date.Format(domain.DateLayout))
			continue
		}

		dishes := parseDishes(textutil.Collapse(strings.Join(dishCols[i], " ")))
		if len(dishes) == 0 {
			logger.Debug("ipp bistro: no dishes on %s", date.Format(domain.DateLayout))
			continue
		}
		menus = append(menus, domain.NewMenu(date, domain.SourceIPPBistro, dishes))
	}
	return menus, nil
}

func parseDishes(text string) []domain.Dish {
	text = strings.ReplaceAll(text, surpriseHeading, " ")

	var dishes []domain.Dish
	for _, m := range dishPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		price, err := textutil.ParsePrice(m[2])
		if err != nil {
			continue
		}
		dishes = append(dishes, domain.NewDish(name, domain.Prices{domain.AudienceOther: price}, nil))
	}
	return dishes
}
