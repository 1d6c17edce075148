// Package kicad adapts the KiCad 9 command-line tools to the driven
// ports: the CLI type implements driven.BoardExporter over kicad-cli
// sub-commands, and KiKit implements driven.VendorPackager over the
// kikit fab command.
package kicad
