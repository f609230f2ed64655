package studentenwerk

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

func tier(student, employee, guest string) domain.Prices {
	return domain.Prices{
		domain.AudienceStudent:  decimal.RequireFromString(student),
		domain.AudienceEmployee: decimal.RequireFromString(employee),
		domain.AudienceGuest:    decimal.RequireFromString(guest),
	}
}

// priceTable maps the dish type printed on the schedule to its prices.
var priceTable = map[string]domain.Prices{
	"Tagesgericht 1": tier("1.00", "1.90", "2.40"),
	"Tagesgericht 2": tier("1.55", "2.45", "2.95"),
	"Tagesgericht 3": tier("1.90", "2.80", "3.30"),
	"Tagesgericht 4": tier("2.40", "3.30", "3.80"),

	"Aktionsessen 1":  tier("1.55", "2.45", "2.95"),
	"Aktionsessen 2":  tier("1.90", "2.80", "3.30"),
	"Aktionsessen 3":  tier("2.40", "3.30", "3.80"),
	"Aktionsessen 4":  tier("2.60", "3.50", "4.00"),
	"Aktionsessen 5":  tier("2.80", "3.70", "4.20"),
	"Aktionsessen 6":  tier("3.00", "3.90", "4.40"),
	"Aktionsessen 7":  tier("3.20", "4.10", "4.60"),
	"Aktionsessen 8":  tier("3.50", "4.40", "4.90"),
	"Aktionsessen 9":  tier("4.00", "4.90", "5.40"),
	"Aktionsessen 10": tier("4.50", "5.40", "5.90"),

	"Biogericht 1":  tier("1.55", "2.45", "2.95"),
	"Biogericht 2":  tier("1.90", "2.80", "3.30"),
	"Biogericht 3":  tier("2.40", "3.30", "3.80"),
	"Biogericht 4":  tier("2.60", "3.50", "4.00"),
	"Biogericht 5":  tier("2.80", "3.70", "4.20"),
	"Biogericht 6":  tier("3.00", "3.90", "4.40"),
	"Biogericht 7":  tier("3.20", "4.10", "4.60"),
	"Biogericht 8":  tier("3.50", "4.40", "4.90"),
	"Biogericht 9":  tier("4.00", "4.90", "5.40"),
	"Biogericht 10": tier("4.50", "5.40", "5.90"),
}

// PricesFor returns the prices of a dish type. Unknown types have none.
func PricesFor(dishType string) domain.Prices {
	if p, ok := priceTable[dishType]; ok {
		return p
	}
	return domain.Prices{}
}
