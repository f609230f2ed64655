package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

func TestRouteFile(t *testing.T) {
	tests := []struct {
		path         string
		wantSource   string
		wantLocation string
		wantOK       bool
	}{
		{"in/fmi-bistro_KW44_2017.txt", domain.SourceFMIBistro, "", true},
		{"mediziner-mensa_kw_44_2018.txt", domain.SourceMedizinerMensa, "", true},
		{"studentenwerk_mensa-garching_2017.html", domain.SourceStudentenwerk, "mensa-garching", true},
		{"studentenwerk.html", "", "", false},
		{"notes.txt", "", "", false},
		{".fmi-bistro_KW44_2017.txt.swp", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			source, flags, ok := routeFile(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantLocation, flags.location)
		})
	}
}

func copyFixture(t *testing.T, src, dst string) {
	t.Helper()
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}

func TestWatchCmd_Once(t *testing.T) {
	env := useTestApp(t)
	dir := t.TempDir()
	copyFixture(t, fmiFixture, filepath.Join(dir, "fmi-bistro_KW44_2017.txt"))
	copyFixture(t, garchingFixture, filepath.Join(dir, "studentenwerk_mensa-garching.html"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ipp-bistro_undated.txt"), []byte("Montag"), 0o644))

	out, err := execute(t, "watch", dir, "--once")
	require.NoError(t, err)

	assert.Contains(t, out, "Published fmi-bistro from fmi-bistro_KW44_2017.txt")
	assert.Contains(t, out, "Published mensa-garching from studentenwerk_mensa-garching.html")
	assert.NotContains(t, out, "Watching")

	locations, err := env.store.Locations()
	require.NoError(t, err)
	assert.Equal(t, []string{domain.SourceFMIBistro, "mensa-garching"}, locations)
}

func TestWatchCmd_KeepsEveryWeekOfALocation(t *testing.T) {
	env := useTestApp(t)
	dir := t.TempDir()
	copyFixture(t, ippFixtureKW18, filepath.Join(dir, "ipp-bistro_kw_18_2018.txt"))
	copyFixture(t, ippFixtureKW19, filepath.Join(dir, "ipp-bistro_kw_19_2018.txt"))

	_, err := execute(t, "watch", dir, "--once")
	require.NoError(t, err)

	doc, err := env.store.ReadCombined(domain.SourceIPPBistro)
	require.NoError(t, err)
	require.Len(t, doc.Weeks, 2)
	assert.Equal(t, domain.WeekKey{Year: 2018, Number: 18}, doc.Weeks[0].Key())
	assert.Equal(t, domain.WeekKey{Year: 2018, Number: 19}, doc.Weeks[1].Key())
}

func TestWatchCmd_NotADirectory(t *testing.T) {
	useTestApp(t)

	_, err := execute(t, "watch", fmiFixture, "--once")
	assert.Error(t, err)
}

func TestWatchDir(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	seen := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchDir(ctx, dir, func(path string) {
			select {
			case seen <- path:
			default:
			}
		})
	}()

	target := filepath.Join(dir, "fmi-bistro_KW44_2017.txt")
	require.Eventually(t, func() bool {
		require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
		select {
		case path := <-seen:
			return path == target
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchDir did not stop")
	}
}

func TestWatchDir_MissingDir(t *testing.T) {
	err := watchDir(context.Background(), filepath.Join(t.TempDir(), "missing"), func(string) {})
	assert.Error(t, err)
}
