package domain

import (
	"fmt"
	"sort"
)

// Source names a publication format. Each source has exactly one parser.
const (
	SourceStudentenwerk  = "studentenwerk"
	SourceFMIBistro      = "fmi-bistro"
	SourceIPPBistro      = "ipp-bistro"
	SourceMedizinerMensa = "mediziner-mensa"
)

// Canteen is a location that publishes menus.
type Canteen struct {
	// ID is the location key used in output paths and combined documents.
	ID string

	// Name is the display name.
	Name string

	// Source is the publication format of the canteen.
	Source string

	// StudentenwerkID is the numeric id in Studentenwerk URLs.
	// Zero for other sources.
	StudentenwerkID int
}

var canteens = map[string]Canteen{
	"mensa-arcisstr":         {ID: "mensa-arcisstr", Name: "Mensa Arcisstraße", Source: SourceStudentenwerk, StudentenwerkID: 421},
	"mensa-garching":         {ID: "mensa-garching", Name: "Mensa Garching", Source: SourceStudentenwerk, StudentenwerkID: 422},
	"mensa-leopoldstr":       {ID: "mensa-leopoldstr", Name: "Mensa Leopoldstraße", Source: SourceStudentenwerk, StudentenwerkID: 411},
	"mensa-lothstr":          {ID: "mensa-lothstr", Name: "Mensa Lothstraße", Source: SourceStudentenwerk, StudentenwerkID: 431},
	"mensa-martinsried":      {ID: "mensa-martinsried", Name: "Mensa Martinsried", Source: SourceStudentenwerk, StudentenwerkID: 412},
	"mensa-pasing":           {ID: "mensa-pasing", Name: "Mensa Pasing", Source: SourceStudentenwerk, StudentenwerkID: 432},
	"mensa-weihenstephan":    {ID: "mensa-weihenstephan", Name: "Mensa Weihenstephan", Source: SourceStudentenwerk, StudentenwerkID: 423},
	"stubistro-arcisstr":     {ID: "stubistro-arcisstr", Name: "StuBistro Arcisstraße", Source: SourceStudentenwerk, StudentenwerkID: 450},
	"stubistro-goethestr":    {ID: "stubistro-goethestr", Name: "StuBistro Goethestraße", Source: SourceStudentenwerk, StudentenwerkID: 418},
	"stubistro-großhadern":   {ID: "stubistro-großhadern", Name: "StuBistro Großhadern", Source: SourceStudentenwerk, StudentenwerkID: 414},
	"stubistro-rosenheim":    {ID: "stubistro-rosenheim", Name: "StuBistro Rosenheim", Source: SourceStudentenwerk, StudentenwerkID: 441},
	"stubistro-schellingstr": {ID: "stubistro-schellingstr", Name: "StuBistro Schellingstraße", Source: SourceStudentenwerk, StudentenwerkID: 416},
	"stucafe-boltzmannstr":   {ID: "stucafe-boltzmannstr", Name: "StuCafé Boltzmannstraße", Source: SourceStudentenwerk, StudentenwerkID: 527},
	"stucafe-garching":       {ID: "stucafe-garching", Name: "StuCafé Mensa Garching", Source: SourceStudentenwerk, StudentenwerkID: 524},
	SourceFMIBistro:          {ID: SourceFMIBistro, Name: "FMI Bistro Garching", Source: SourceFMIBistro},
	SourceIPPBistro:          {ID: SourceIPPBistro, Name: "IPP Bistro Garching", Source: SourceIPPBistro},
	SourceMedizinerMensa:     {ID: SourceMedizinerMensa, Name: "Mediziner Mensa", Source: SourceMedizinerMensa},
}

// LookupCanteen returns the catalogued canteen with the given key.
func LookupCanteen(id string) (Canteen, error) {
	c, ok := canteens[id]
	if !ok {
		return Canteen{}, fmt.Errorf("canteen %q: %w", id, ErrNotFound)
	}
	return c, nil
}

// Canteens returns the catalogue sorted by key.
func Canteens() []Canteen {
	list := make([]Canteen, 0, len(canteens))
	for _, c := range canteens {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Sources returns the known source names, sorted.
func Sources() []string {
	return []string{SourceFMIBistro, SourceIPPBistro, SourceMedizinerMensa, SourceStudentenwerk}
}
