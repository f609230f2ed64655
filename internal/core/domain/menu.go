package domain

import "time"

// Menu is the list of dishes offered at one location on one date.
type Menu struct {
	// Date is the civil date at midnight UTC.
	Date time.Time

	// Location is the canteen key the menu was published for.
	Location string

	// Dishes in published order.
	Dishes []Dish
}

// NewMenu builds a menu for the civil date of date.
func NewMenu(date time.Time, location string, dishes []Dish) Menu {
	d := make([]Dish, len(dishes))
	copy(d, dishes)
	return Menu{
		Date:     CivilDate(date),
		Location: location,
		Dishes:   d,
	}
}

// Day groups the menus of one date inside a Week.
type Day struct {
	Date  time.Time
	Menus []Menu
}

// Dishes returns the dishes of all menus of the day in accumulation order.
func (d *Day) Dishes() []Dish {
	var dishes []Dish
	for i := range d.Menus {
		dishes = append(dishes, d.Menus[i].Dishes...)
	}
	return dishes
}
