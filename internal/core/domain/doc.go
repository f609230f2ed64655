// Package domain defines the core entities of the menu pipeline.
//
// This package is the innermost layer of the hexagon. It defines:
//
//   - Dish, Menu, Day and Week: the canonical weekly schedule
//   - RawDocument: a source publication before parsing
//   - Canteen: the catalogue of known locations
//
// It also holds the two pieces of logic every source shares: the ISO
// calendar rule in GetDate and the week aggregation in ToWeeks, together
// with the canonical JSON form of a Week.
//
// # Import Rules
//
//   - Can Import: Standard library, shopspring/decimal for money amounts
//   - Cannot Import: Any internal/ package
package domain
