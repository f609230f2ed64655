package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

// dayLayout formats day headers.
const dayLayout = "Monday, 02.01.2006"

// Renderer writes weeks as bordered tables.
type Renderer struct {
	w      io.Writer
	styles *Styles
}

// NewRenderer creates a renderer writing to w with the default theme.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: NewStyles(w, nil)}
}

// Weeks renders every week of a location in order.
func (r *Renderer) Weeks(location string, weeks []*domain.Week) error {
	if len(weeks) == 0 {
		_, err := fmt.Fprintln(r.w, r.styles.Muted.Render("No menus for "+location+"."))
		return err
	}
	for _, week := range weeks {
		if err := r.Week(location, week); err != nil {
			return err
		}
	}
	return nil
}

// Week renders one week.
func (r *Renderer) Week(location string, week *domain.Week) error {
	_, err := fmt.Fprintln(r.w, r.styles.Box.Render(r.weekBody(location, week)))
	return err
}

// Day renders a single day without a border.
func (r *Renderer) Day(location string, day *domain.Day) error {
	title := r.styles.Title.Render(title(location))
	_, err := fmt.Fprintln(r.w, lipgloss.JoinVertical(lipgloss.Left, title, r.dayBody(day)))
	return err
}

func (r *Renderer) weekBody(location string, week *domain.Week) string {
	key := week.Key()
	parts := []string{r.styles.Title.Render(fmt.Sprintf("%s · KW %02d/%d", title(location), key.Number, key.Year))}
	for _, day := range week.SortedDays() {
		parts = append(parts, "", r.dayBody(day))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) dayBody(day *domain.Day) string {
	lines := []string{r.styles.Day.Render(day.Date.Format(dayLayout))}

	dishes := day.Dishes()
	if len(dishes) == 0 {
		lines = append(lines, "  "+r.styles.Muted.Render("no dishes"))
	}

	width := 0
	for i := range dishes {
		width = max(width, lipgloss.Width(dishes[i].Name))
	}
	for i := range dishes {
		d := dishes[i]
		line := "  " + r.styles.Dish.Render(d.Name) + strings.Repeat(" ", width-lipgloss.Width(d.Name))
		if p := FormatPrices(d.Prices); p != "" {
			line += "  " + r.styles.Price.Render(p)
		}
		if len(d.Labels) > 0 {
			line += "  " + r.styles.Muted.Render("["+strings.Join(d.Labels, ", ")+"]")
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n")
}

// FormatPrices formats amounts as "3.60 €" for a uniform price or
// "student 1.00 € · employee 1.90 € · guest 2.40 €" otherwise.
func FormatPrices(p domain.Prices) string {
	if len(p) == 0 {
		return ""
	}
	if amount, ok := p[domain.AudienceOther]; ok && len(p) == 1 {
		return amount.StringFixed(2) + " €"
	}

	order := []domain.Audience{domain.AudienceStudent, domain.AudienceEmployee, domain.AudienceGuest, domain.AudienceOther}
	parts := make([]string, 0, len(p))
	for _, a := range order {
		if amount, ok := p[a]; ok {
			parts = append(parts, fmt.Sprintf("%s %s €", a, amount.StringFixed(2)))
		}
	}
	return strings.Join(parts, " · ")
}

// title returns the display name of a catalogued location.
func title(location string) string {
	if c, err := domain.LookupCanteen(location); err == nil {
		return c.Name
	}
	return location
}
