// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - MenuParser: Turns one raw menu publication into daily menus
//   - MenuWriter: Publishes aggregated weeks
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MenuReader: Reads the published tree back. Without it, lookups fail.
//   - Fetcher: Downloads publications. Without it, only local files are parsed.
//   - TextExtractor: Converts PDF publications to layout text.
//   - FeedExporter: Renders an OpenMensa feed next to the JSON tree.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or parser package
package driven
