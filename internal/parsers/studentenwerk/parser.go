// Package studentenwerk parses the menu pages published by the
// Studentenwerk München for its canteens.
//
// A page lists one schedule item per day. The item header carries the date,
// the list below it one row per dish with its type ("Tagesgericht 1"),
// description and the label codes in data attributes.
package studentenwerk

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eat-cli/internal/logger"
	"github.com/custodia-labs/eat-cli/internal/parsers/textutil"
)

// Ensure Parser implements the interface.
var _ driven.MenuParser = (*Parser)(nil)

const (
	classItem        = "c-schedule__item"
	classRow         = "c-schedule__list-item"
	classDishType    = "stwm-artname"
	classDescription = "js-schedule-dish-description"

	dateLayout = "02.01.2006"
)

var labelAttributes = []string{"data-essen-typ", "data-essen-allergene", "data-essen-zusatz"}

var weekdayNames = map[string]bool{
	"Montag":     true,
	"Dienstag":   true,
	"Mittwoch":   true,
	"Donnerstag": true,
	"Freitag":    true,
	"Samstag":    true,
	"Sonntag":    true,
}

// Parser handles Studentenwerk schedule pages.
type Parser struct{}

// New creates a new Studentenwerk parser.
func New() *Parser {
	return &Parser{}
}

// Source returns the source name.
func (p *Parser) Source() string {
	return domain.SourceStudentenwerk
}

// SupportedMIMETypes returns the MIME types this parser handles.
func (p *Parser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Parse parses the HTML content of raw for raw.Location.
func (p *Parser) Parse(raw *domain.RawDocument) ([]domain.Menu, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	root, err := html.Parse(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: studentenwerk: %v", domain.ErrInvalidInput, err)
	}
	return p.GetMenus(root, raw.Location)
}

// GetMenus extracts one menu per day with dishes, in document order.
// Days whose date cannot be read are skipped.
func (p *Parser) GetMenus(root *html.Node, location string) ([]domain.Menu, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: studentenwerk: nil document", domain.ErrInvalidInput)
	}
	if location == "" {
		return nil, fmt.Errorf("%w: studentenwerk: empty location", domain.ErrInvalidInput)
	}

	items := findAll(root, func(n *html.Node) bool { return hasClass(n, classItem) })
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: studentenwerk: no schedule items", domain.ErrInvalidInput)
	}

	var menus []domain.Menu
	for _, item := range items {
		label := ""
		if strong := findFirst(item, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "strong" }); strong != nil {
			label = textutil.Collapse(text(strong))
		}
		date, err := ParseDate(label)
		if err != nil {
			logger.Warn("studentenwerk %s: skipping day: %v", location, err)
			continue
		}
		if domain.ISOWeekday(date) > 4 {
			logger.Debug("studentenwerk %s: skipping weekend day %s", location, date.Format(domain.DateLayout))
			continue
		}

		dishes := parseRows(item)
		if len(dishes) == 0 {
			logger.Debug("studentenwerk %s: no dishes on %s", location, date.Format(domain.DateLayout))
			continue
		}
		menus = append(menus, domain.NewMenu(date, location, dishes))
	}
	return menus, nil
}

// ParseDate reads a schedule date label such as "Montag, 27.03.2017"
// or "27.03.2017".
func ParseDate(label string) (time.Time, error) {
	value := strings.TrimSpace(label)
	if day, rest, ok := strings.Cut(value, ","); ok && weekdayNames[strings.TrimSpace(day)] {
		value = strings.TrimSpace(rest)
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date label %q", domain.ErrInvalidDate, label)
	}
	return date, nil
}

func parseRows(item *html.Node) []domain.Dish {
	var (
		dishes    []domain.Dish
		lastType  string
		lastLabel []string
		seen      = make(map[string]int)
	)

	for _, row := range findAll(item, func(n *html.Node) bool { return hasClass(n, classRow) }) {
		var dishType, name string
		if n := findFirst(row, func(n *html.Node) bool { return hasClass(n, classDishType) }); n != nil {
			dishType = textutil.Collapse(text(n))
		}
		if n := findFirst(row, func(n *html.Node) bool { return hasClass(n, classDescription) }); n != nil {
			name = textutil.Collapse(text(n))
		}

		labels := rowLabels(row)
		if dishType == "" {
			dishType = lastType
			labels = append(labels, lastLabel...)
		}
		lastType, lastLabel = dishType, labels

		if name == "" {
			continue
		}
		seen[name]++
		if count := seen[name]; count > 1 {
			name = name + " (" + strconv.Itoa(count) + ")"
		}
		dishes = append(dishes, domain.NewDish(name, PricesFor(dishType), labels))
	}
	return dishes
}

func rowLabels(row *html.Node) []string {
	var labels []string
	for _, attr := range labelAttributes {
		for _, code := range strings.Split(attribute(row, attr), ",") {
			if code = strings.TrimSpace(code); code != "" {
				labels = append(labels, code)
			}
		}
	}
	return labels
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attribute(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attribute(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			nodes = append(nodes, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return nodes
}

func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	if match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := findFirst(c, match); n != nil {
			return n
		}
	}
	return nil
}

// text returns the text content of n without <sup> footnotes.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "sup":
			b.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
