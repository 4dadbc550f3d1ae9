// Package ui provides terminal output formatting for depsguard.
//
// This package handles all user-facing status output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//
// All output goes to ui.Out (defaults to os.Stderr) to allow
// testing and output redirection, and to keep match reports on
// stdout machine-readable.
//
// Example usage:
//
//	ui.Header()
//	ui.Info("Listing repositories for %s...", org)
//	ui.Success("Scan complete")
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
