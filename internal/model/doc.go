// Package model defines the domain types and value objects for the
// langtour CLI.
//
// This package contains pure data structures with no external dependencies.
// Unit metadata (UnitInfo), run results (UnitResult, RunReport) and the
// category/status enums are shared between the demo catalog, the runner
// and the CLI output layer.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
