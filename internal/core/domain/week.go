package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// WeekKey identifies an ISO calendar week.
type WeekKey struct {
	Year   int
	Number int
}

// Less orders keys by year, then week number.
func (k WeekKey) Less(other WeekKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Number < other.Number
}

// String returns the key as "2017-W44".
func (k WeekKey) String() string {
	return fmt.Sprintf("%d-W%02d", k.Year, k.Number)
}

// Week holds the days of one ISO calendar week that have at least one menu.
// Days is keyed by weekday index, Monday = 0 .. Sunday = 6.
type Week struct {
	Year   int
	Number int
	Days   map[int]*Day
}

// NewWeek creates an empty week.
func NewWeek(key WeekKey) *Week {
	return &Week{
		Year:   key.Year,
		Number: key.Number,
		Days:   make(map[int]*Day),
	}
}

// Key returns the week's identity.
func (w *Week) Key() WeekKey {
	return WeekKey{Year: w.Year, Number: w.Number}
}

// Add appends menu to the day of its date, creating the day on first use.
func (w *Week) Add(menu Menu) {
	weekday := ISOWeekday(menu.Date)
	day, ok := w.Days[weekday]
	if !ok {
		day = &Day{Date: CivilDate(menu.Date)}
		w.Days[weekday] = day
	}
	day.Menus = append(day.Menus, menu)
}

// SortedDays returns the present days, Monday first.
func (w *Week) SortedDays() []*Day {
	weekdays := make([]int, 0, len(w.Days))
	for wd := range w.Days {
		weekdays = append(weekdays, wd)
	}
	sort.Ints(weekdays)

	days := make([]*Day, len(weekdays))
	for i, wd := range weekdays {
		days[i] = w.Days[wd]
	}
	return days
}

// Menus flattens the week back into its menus, Monday first.
func (w *Week) Menus() []Menu {
	var menus []Menu
	for _, day := range w.SortedDays() {
		menus = append(menus, day.Menus...)
	}
	return menus
}

// ToWeeks groups menus into ISO calendar weeks. Only weekdays with at
// least one menu get a Day; menus falling on the same date accumulate
// in that Day in input order.
func ToWeeks(menus []Menu) map[WeekKey]*Week {
	weeks := make(map[WeekKey]*Week)
	for _, menu := range menus {
		key := WeekKeyOf(menu.Date)
		week, ok := weeks[key]
		if !ok {
			week = NewWeek(key)
			weeks[key] = week
		}
		week.Add(menu)
	}
	return weeks
}

// SortedWeeks returns the weeks ascending by (year, number).
func SortedWeeks(weeks map[WeekKey]*Week) []*Week {
	sorted := make([]*Week, 0, len(weeks))
	for _, w := range weeks {
		sorted = append(sorted, w)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key().Less(sorted[j].Key())
	})
	return sorted
}

type weekJSON struct {
	Number int       `json:"number"`
	Year   int       `json:"year"`
	Days   []dayJSON `json:"days"`
}

type dayJSON struct {
	Date   string `json:"date"`
	Dishes []Dish `json:"dishes"`
}

// MarshalJSON implements json.Marshaler with the canonical week layout.
func (w Week) MarshalJSON() ([]byte, error) {
	out := weekJSON{
		Number: w.Number,
		Year:   w.Year,
		Days:   make([]dayJSON, 0, len(w.Days)),
	}
	for _, day := range w.SortedDays() {
		dishes := day.Dishes()
		if dishes == nil {
			dishes = []Dish{}
		}
		out.Days = append(out.Days, dayJSON{
			Date:   day.Date.Format(DateLayout),
			Dishes: dishes,
		})
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Each day is restored with a
// single menu holding all of its dishes; the location is left empty.
func (w *Week) UnmarshalJSON(data []byte) error {
	var in weekJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	week := NewWeek(WeekKey{Year: in.Year, Number: in.Number})
	for _, d := range in.Days {
		date, err := time.Parse(DateLayout, d.Date)
		if err != nil {
			return fmt.Errorf("week %d/%d: %w", in.Year, in.Number, err)
		}
		week.Add(NewMenu(date, "", d.Dishes))
	}
	*w = *week
	return nil
}

// CombinedDocument is the published document of one canteen spanning
// every week found in its sources.
type CombinedDocument struct {
	CanteenID string  `json:"canteen_id"`
	Weeks     []*Week `json:"weeks"`
}

// Combine builds the combined document with weeks ascending by (year, number).
func Combine(canteenID string, weeks map[WeekKey]*Week) CombinedDocument {
	return CombinedDocument{
		CanteenID: canteenID,
		Weeks:     SortedWeeks(weeks),
	}
}

// Merge returns a document holding the weeks of c and of updated. A week
// of updated replaces the week of c with the same key.
func (c CombinedDocument) Merge(updated []*Week) CombinedDocument {
	weeks := make(map[WeekKey]*Week, len(c.Weeks)+len(updated))
	for _, w := range c.Weeks {
		weeks[w.Key()] = w
	}
	for _, w := range updated {
		weeks[w.Key()] = w
	}
	return Combine(c.CanteenID, weeks)
}

// UnmarshalJSON implements json.Unmarshaler and tags every restored menu
// with the canteen id.
func (c *CombinedDocument) UnmarshalJSON(data []byte) error {
	type combinedJSON CombinedDocument
	var in combinedJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	for _, w := range in.Weeks {
		for _, day := range w.Days {
			for i := range day.Menus {
				day.Menus[i].Location = in.CanteenID
			}
		}
	}
	*c = CombinedDocument(in)
	return nil
}

// Day returns the day of date, if present.
func (c CombinedDocument) Day(date time.Time) (*Day, bool) {
	key := WeekKeyOf(date)
	for _, w := range c.Weeks {
		if w.Key() != key {
			continue
		}
		day, ok := w.Days[ISOWeekday(date)]
		return day, ok
	}
	return nil, false
}
