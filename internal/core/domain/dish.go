package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Audience is the customer group a price applies to.
type Audience string

const (
	// AudienceStudent is the price for students.
	AudienceStudent Audience = "student"

	// AudienceEmployee is the price for university staff.
	AudienceEmployee Audience = "employee"

	// AudienceGuest is the price for everybody else.
	AudienceGuest Audience = "guest"

	// AudienceOther is a uniform price not distinguished by audience.
	AudienceOther Audience = "other"
)

// Prices maps an audience to the amount in euro.
// It serialises as a JSON object with sorted keys and two-decimal numbers.
type Prices map[Audience]decimal.Decimal

// Audiences returns the audiences with a price, sorted.
func (p Prices) Audiences() []Audience {
	audiences := make([]Audience, 0, len(p))
	for a := range p {
		audiences = append(audiences, a)
	}
	sort.Slice(audiences, func(i, j int) bool { return audiences[i] < audiences[j] })
	return audiences
}

// Equal reports whether both price lists hold the same amounts,
// regardless of decimal scale.
func (p Prices) Equal(other Prices) bool {
	if len(p) != len(other) {
		return false
	}
	for a, amount := range p {
		o, ok := other[a]
		if !ok || !amount.Equal(o) {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler.
func (p Prices) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range p.Audiences() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(a))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(p[a].StringFixed(2))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Prices) UnmarshalJSON(data []byte) error {
	var raw map[string]json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	prices := make(Prices, len(raw))
	for k, v := range raw {
		amount, err := decimal.NewFromString(v.String())
		if err != nil {
			return fmt.Errorf("price %q: %w", k, err)
		}
		prices[Audience(k)] = amount
	}
	*p = prices
	return nil
}

// Dish is a single item offered on a day.
type Dish struct {
	// Name is the dish name as published.
	Name string `json:"name"`

	// Prices holds the price per audience. May be empty.
	Prices Prices `json:"prices"`

	// Labels are allergen and dietary codes, sorted and unique.
	Labels []string `json:"labels"`
}

// NewDish builds a dish from copies of its inputs.
// Labels are trimmed, de-duplicated and sorted.
func NewDish(name string, prices Prices, labels []string) Dish {
	p := make(Prices, len(prices))
	for a, amount := range prices {
		p[a] = amount
	}
	return Dish{
		Name:   strings.TrimSpace(name),
		Prices: p,
		Labels: NormaliseLabels(labels),
	}
}

// MarshalJSON implements json.Marshaler. Labels are never null.
func (d Dish) MarshalJSON() ([]byte, error) {
	type dishJSON Dish
	out := dishJSON(d)
	if out.Labels == nil {
		out.Labels = []string{}
	}
	return json.Marshal(out)
}

// NormaliseLabels trims, de-duplicates and sorts label codes.
// The result is never nil.
func NormaliseLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	result := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		result = append(result, l)
	}
	sort.Strings(result)
	return result
}
