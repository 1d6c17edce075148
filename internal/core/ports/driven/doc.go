// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Runner: Executes external processes with a scoped search path
//   - BoardExporter: Drives kicad-cli export sub-commands
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the affected feature is simply skipped:
//
//   - VendorPackager: KiKit vendor packaging. Only used when a vendor is set.
//   - Archiver: Gerber zip packaging. Only used with --zip.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
