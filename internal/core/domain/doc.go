// Package domain defines the core entities for kifab.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Project: A KiCad project and its derived file paths
//   - Vendor: A fabrication-house profile tag
//   - Invocation: The argument contract for the build-outputs program
//   - OutputPlan: Options for a full output-generation run
//   - RunReport: What a run produced and where
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
