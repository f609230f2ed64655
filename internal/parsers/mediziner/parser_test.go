package mediziner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestParser_Interface(t *testing.T) {
	p := New()
	assert.Equal(t, "mediziner-mensa", p.Source())
	assert.Equal(t, []string{"text/plain"}, p.SupportedMIMETypes())
}

func TestGetMenus_Golden(t *testing.T) {
	for _, tt := range []struct {
		name string
		week int
	}{
		{"menu_kw_44_2018", 44},
		{"menu_kw_47_2018", 47},
	} {
		t.Run(tt.name, func(t *testing.T) {
			menus, err := New().GetMenus(readFixture(t, tt.name+".txt"), 2018, tt.week)
			require.NoError(t, err)

			data, err := json.Marshal(domain.Combine(domain.SourceMedizinerMensa, domain.ToWeeks(menus)))
			require.NoError(t, err)
			assert.JSONEq(t, readFixture(t, tt.name+".json"), string(data))
		})
	}
}

func TestGetMenus_WeekendIgnored(t *testing.T) {
	menus, err := New().GetMenus(readFixture(t, "menu_kw_44_2018.txt"), 2018, 44)
	require.NoError(t, err)

	require.Len(t, menus, 4)
	for _, m := range menus {
		assert.Less(t, domain.ISOWeekday(m.Date), 5)
	}
}

func TestGetMenus_DateFromResolver(t *testing.T) {
	menus, err := New().GetMenus(readFixture(t, "menu_kw_47_2018.txt"), 2018, 47)
	require.NoError(t, err)

	require.Len(t, menus, 5)
	assert.Equal(t, "2018-11-21", menus[2].Date.Format(domain.DateLayout))
}

func TestGetMenus_SoupHasNoPrice(t *testing.T) {
	menus, err := New().GetMenus(readFixture(t, "menu_kw_47_2018.txt"), 2018, 47)
	require.NoError(t, err)

	soup := menus[0].Dishes[0]
	assert.Equal(t, "Brokkolisuppe", soup.Name)
	assert.Empty(t, soup.Prices)
}

func TestGetMenus_InvalidInput(t *testing.T) {
	tests := map[string]string{
		"no separator": "Suppe      Hauptgericht\nMontag, 29.10.2018  Suppe  Braten 3,00 €\n",
		"no headings":  "*****\nMontag, 29.10.2018  Suppe  Braten 3,00 €\n",
		"no blocks":    "Suppe      Hauptgericht\n*****\nnichts\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New().GetMenus(text, 2018, 44)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGetMenus_OnlyWeekend(t *testing.T) {
	text := "Suppe      Hauptgericht\n*****\nSamstag, 03.11.2018  Braten 3,00 €\n"

	menus, err := New().GetMenus(text, 2018, 44)
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestSplitLabels(t *testing.T) {
	tests := []struct {
		in     string
		name   string
		labels []string
	}{
		{"Spinatlasagne 1,V", "Spinatlasagne", []string{"1", "V"}},
		{"Gulaschsuppe R S", "Gulaschsuppe", []string{"S", "R"}},
		{"Gemüse", "Gemüse", nil},
		{"V", "V", nil},
		{"Putenbrust mit Gemüse", "Putenbrust mit Gemüse", nil},
		{"Pizza 123", "Pizza 123", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, labels := splitLabels(tt.in)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestParse(t *testing.T) {
	menus, err := New().Parse(&domain.RawDocument{
		Content: []byte(readFixture(t, "menu_kw_47_2018.txt")),
		Year:    2018,
		Week:    47,
	})
	require.NoError(t, err)
	assert.Len(t, menus, 5)

	_, err = New().Parse(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
