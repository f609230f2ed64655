package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

func testWeeks() map[domain.WeekKey]*domain.Week {
	return domain.ToWeeks([]domain.Menu{
		domain.NewMenu(time.Date(2017, 10, 30, 0, 0, 0, 0, time.UTC), "fmi-bistro",
			[]domain.Dish{domain.NewDish("Gulasch", nil, nil)}),
	})
}

func TestMenuStore_WriteWeek(t *testing.T) {
	store := NewMenuStore()
	week := testWeeks()[domain.WeekKey{Year: 2017, Number: 44}]

	require.NoError(t, store.WriteWeek("fmi-bistro", week))

	got, ok := store.Week("fmi-bistro", week.Key())
	require.True(t, ok)
	assert.Same(t, week, got)

	_, ok = store.Week("ipp-bistro", week.Key())
	assert.False(t, ok)
}

func TestMenuStore_WriteWeek_Invalid(t *testing.T) {
	store := NewMenuStore()
	assert.ErrorIs(t, store.WriteWeek("", domain.NewWeek(domain.WeekKey{Year: 2017, Number: 1})), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.WriteWeek("fmi-bistro", nil), domain.ErrInvalidInput)
}

func TestMenuStore_Combined(t *testing.T) {
	store := NewMenuStore()

	require.NoError(t, store.WriteCombined(domain.Combine("fmi-bistro", testWeeks())))
	require.NoError(t, store.WriteCombined(domain.Combine("ipp-bistro", nil)))

	doc, err := store.ReadCombined("fmi-bistro")
	require.NoError(t, err)
	assert.Equal(t, "fmi-bistro", doc.CanteenID)
	assert.Len(t, doc.Weeks, 1)

	locations, err := store.Locations()
	require.NoError(t, err)
	assert.Equal(t, []string{"fmi-bistro", "ipp-bistro"}, locations)
}

func TestMenuStore_ReadCombined_NotFound(t *testing.T) {
	_, err := NewMenuStore().ReadCombined("mensa-garching")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenuStore_WriteCombined_Invalid(t *testing.T) {
	err := NewMenuStore().WriteCombined(domain.CombinedDocument{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
