// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// MenuService turns raw publications into published weeks; Refresher
// repeats fetch, parse and publish for a set of locations.
package services
