package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
)

// Ensure MenuStore implements the interfaces.
var (
	_ driven.MenuWriter = (*MenuStore)(nil)
	_ driven.MenuReader = (*MenuStore)(nil)
)

const (
	combinedDir  = "combined"
	combinedFile = "combined.json"
)

// MenuStore reads and writes the published JSON tree below a root directory.
type MenuStore struct {
	root string
}

// NewMenuStore creates a store rooted at dir.
// Directories are created on the first write.
func NewMenuStore(dir string) (*MenuStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory: %w", domain.ErrInvalidInput)
	}
	return &MenuStore{root: dir}, nil
}

// Root returns the output root.
func (s *MenuStore) Root() string {
	return s.root
}

// WeekPath returns the file of one week: <root>/<location>/<year>/<ww>.json.
func (s *MenuStore) WeekPath(location string, key domain.WeekKey) string {
	return filepath.Join(s.root, location, strconv.Itoa(key.Year), fmt.Sprintf("%02d.json", key.Number))
}

// CombinedPath returns the combined document of a location.
func (s *MenuStore) CombinedPath(location string) string {
	return filepath.Join(s.root, location, combinedDir, combinedFile)
}

// WriteWeek writes the JSON document of one week.
func (s *MenuStore) WriteWeek(location string, week *domain.Week) error {
	if err := validLocation(location); err != nil {
		return err
	}
	if week == nil {
		return fmt.Errorf("nil week: %w", domain.ErrInvalidInput)
	}

	data, err := json.MarshalIndent(week, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal week %s: %w", week.Key(), err)
	}
	return WriteAtomic(s.WeekPath(location, week.Key()), append(data, '\n'))
}

// WriteCombined writes the combined document of doc.CanteenID.
func (s *MenuStore) WriteCombined(doc domain.CombinedDocument) error {
	if err := validLocation(doc.CanteenID); err != nil {
		return err
	}
	if doc.Weeks == nil {
		doc.Weeks = []*domain.Week{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal combined document: %w", err)
	}
	return WriteAtomic(s.CombinedPath(doc.CanteenID), append(data, '\n'))
}

// ReadWeek loads one published week.
func (s *MenuStore) ReadWeek(location string, key domain.WeekKey) (*domain.Week, error) {
	if err := validLocation(location); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.WeekPath(location, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: week %s of %s", domain.ErrNotFound, key, location)
		}
		return nil, err
	}

	var week domain.Week
	if err := json.Unmarshal(data, &week); err != nil {
		return nil, fmt.Errorf("decode week %s of %s: %w", key, location, err)
	}
	for _, day := range week.Days {
		for i := range day.Menus {
			day.Menus[i].Location = location
		}
	}
	return &week, nil
}

// ReadCombined loads the combined document of location.
func (s *MenuStore) ReadCombined(location string) (*domain.CombinedDocument, error) {
	if err := validLocation(location); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.CombinedPath(location))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no menus for %s", domain.ErrNotFound, location)
		}
		return nil, err
	}

	var doc domain.CombinedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode combined document of %s: %w", location, err)
	}
	return &doc, nil
}

// Locations lists the locations with a combined document, sorted.
func (s *MenuStore) Locations() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(s.CombinedPath(e.Name())); err == nil {
			result = append(result, e.Name())
		}
	}
	sort.Strings(result)
	return result, nil
}

// validLocation rejects keys that would escape the output root.
func validLocation(location string) error {
	if location == "" || location == "." || location == ".." ||
		strings.ContainsAny(location, `/\`) {
		return fmt.Errorf("location %q: %w", location, domain.ErrInvalidInput)
	}
	return nil
}
