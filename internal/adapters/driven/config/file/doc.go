// Package file implements driven.ConfigStore over a TOML file.
//
// Configuration lives in ~/.kifab/config.toml by default and holds the
// per-user defaults the CLI falls back to: project, vendor, tool path
// prefix and the build-outputs program name.
package file
