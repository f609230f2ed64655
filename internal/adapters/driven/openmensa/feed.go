// Package openmensa exports published weeks as an OpenMensa v2.1 feed.
//
// See https://doc.openmensa.org/feed/v2/ for the format.
package openmensa

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"

	"github.com/custodia-labs/eat-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.FeedExporter = (*Exporter)(nil)

const (
	// FeedVersion is the OpenMensa feed format version.
	FeedVersion = "2.1"

	// FileName is the feed file written next to the combined document.
	FileName = "openmensa.xml"

	// CategoryName is the single meal category of every day.
	CategoryName = "Speiseplan"

	namespace      = "http://openmensa.org/open-mensa-v2"
	schemaInstance = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = namespace + " http://openmensa.org/open-mensa-v2.xsd"
)

// Feed is the <openmensa> document.
type Feed struct {
	XMLName        xml.Name `xml:"openmensa"`
	Version        string   `xml:"version,attr"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Canteen        Canteen  `xml:"canteen"`
}

// Canteen holds the days of one location.
type Canteen struct {
	Days []Day `xml:"day"`
}

// Day is one date with meals.
type Day struct {
	Date       string     `xml:"date,attr"`
	Categories []Category `xml:"category"`
}

// Category groups meals.
type Category struct {
	Name  string `xml:"name,attr"`
	Meals []Meal `xml:"meal"`
}

// Meal is one dish. Labels are not exported as notes.
type Meal struct {
	Name   string  `xml:"name"`
	Prices []Price `xml:"price"`
}

// Price is the amount for one role, formatted with two decimals.
type Price struct {
	Role   string `xml:"role,attr"`
	Amount string `xml:",chardata"`
}

// Role maps an audience to an OpenMensa price role.
// OpenMensa knows student, employee, pupil and other.
func Role(a domain.Audience) string {
	switch a {
	case domain.AudienceStudent:
		return "student"
	case domain.AudienceEmployee:
		return "employee"
	default:
		return "other"
	}
}

// Build converts weeks into a feed. Days keep the order of the weeks.
func Build(weeks []*domain.Week) *Feed {
	feed := &Feed{
		Version:        FeedVersion,
		Xmlns:          namespace,
		XmlnsXSI:       schemaInstance,
		SchemaLocation: schemaLocation,
	}

	for _, week := range weeks {
		for _, d := range week.SortedDays() {
			dishes := d.Dishes()
			if len(dishes) == 0 {
				continue
			}
			meals := make([]Meal, 0, len(dishes))
			for i := range dishes {
				meals = append(meals, meal(dishes[i]))
			}
			feed.Canteen.Days = append(feed.Canteen.Days, Day{
				Date:       d.Date.Format(domain.DateLayout),
				Categories: []Category{{Name: CategoryName, Meals: meals}},
			})
		}
	}
	return feed
}

// meal converts a dish. When two audiences share a role the first in
// sorted audience order wins.
func meal(d domain.Dish) Meal {
	m := Meal{Name: d.Name}
	seen := make(map[string]bool)
	for _, a := range d.Prices.Audiences() {
		role := Role(a)
		if seen[role] {
			continue
		}
		seen[role] = true
		m.Prices = append(m.Prices, Price{Role: role, Amount: d.Prices[a].StringFixed(2)})
	}
	return m
}

// Encode writes the feed of weeks as indented XML with a header.
func Encode(w io.Writer, weeks []*domain.Week) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(Build(weeks)); err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Exporter writes <root>/<location>/openmensa.xml.
type Exporter struct {
	root string
}

// NewExporter creates an exporter below the output root.
func NewExporter(root string) *Exporter {
	return &Exporter{root: root}
}

// Path returns the feed file of location.
func (e *Exporter) Path(location string) string {
	return filepath.Join(e.root, location, FileName)
}

// Export writes the feed of location.
func (e *Exporter) Export(location string, weeks []*domain.Week) error {
	if location == "" || filepath.Base(location) != location || location == ".." {
		return fmt.Errorf("location %q: %w", location, domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, weeks); err != nil {
		return err
	}
	return file.WriteAtomic(e.Path(location), buf.Bytes())
}
