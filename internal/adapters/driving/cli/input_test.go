package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

func TestWeekFromFilename(t *testing.T) {
	tests := []struct {
		name   string
		want   domain.WeekKey
		wantOK bool
	}{
		{"Garching-Speiseplan_KW44_2017.txt", domain.WeekKey{Year: 2017, Number: 44}, true},
		{"menu_kw_47_2018.txt", domain.WeekKey{Year: 2018, Number: 47}, true},
		{"/tmp/pdfs/fmi-bistro_KW5_2019.txt", domain.WeekKey{Year: 2019, Number: 5}, true},
		{"menu.txt", domain.WeekKey{}, false},
		{"kw44.txt", domain.WeekKey{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WeekFromFilename(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadDocument_TextSource(t *testing.T) {
	raw, err := readDocument(domain.SourceFMIBistro, fmiFixture, inputFlags{})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceFMIBistro, raw.Source)
	assert.Equal(t, "text/plain", raw.MIMEType)
	assert.Equal(t, 2017, raw.Year)
	assert.Equal(t, 44, raw.Week)
	assert.NotEmpty(t, raw.Content)
}

func TestReadDocument_FlagsOverrideFilename(t *testing.T) {
	raw, err := readDocument(domain.SourceFMIBistro, fmiFixture, inputFlags{year: 2018, week: 3})
	require.NoError(t, err)
	assert.Equal(t, 2018, raw.Year)
	assert.Equal(t, 3, raw.Week)
}

func TestReadDocument_Studentenwerk(t *testing.T) {
	raw, err := readDocument(domain.SourceStudentenwerk, garchingFixture, inputFlags{location: "mensa-garching"})
	require.NoError(t, err)
	assert.Equal(t, "text/html", raw.MIMEType)
	assert.Equal(t, "mensa-garching", raw.Location)
	assert.Zero(t, raw.Week)
}

func TestReadDocument_Errors(t *testing.T) {
	noWeek := filepath.Join(t.TempDir(), "menu.txt")
	require.NoError(t, os.WriteFile(noWeek, []byte("Montag"), 0o644))

	tests := []struct {
		name    string
		source  string
		path    string
		flags   inputFlags
		wantErr error
	}{
		{"unknown source", "canteen-x", fmiFixture, inputFlags{}, domain.ErrUnsupportedType},
		{"studentenwerk without location", domain.SourceStudentenwerk, garchingFixture, inputFlags{}, domain.ErrInvalidInput},
		{"text without week", domain.SourceIPPBistro, noWeek, inputFlags{}, domain.ErrInvalidInput},
		{"week flag without year", domain.SourceIPPBistro, noWeek, inputFlags{week: 12}, domain.ErrInvalidInput},
		{"missing file", domain.SourceFMIBistro, "missing_KW44_2017.txt", inputFlags{}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readDocument(tt.source, tt.path, tt.flags)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWriteJSON_CompactWhenNotTerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, writeJSON(buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\"a\":1}\n", buf.String())
}
