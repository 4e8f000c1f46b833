// Package shellbuild provides public constants for external tools
// integrating with the shellbuild CLI.
package shellbuild

// Exit codes returned by the shellbuild CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (script unreadable, expansion failed, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a declaration error (invalid file, validation failure, etc.).
	ExitConfigError = 2

	// ExitUsageError indicates the CLI was invoked incorrectly (unknown command or flag).
	ExitUsageError = 3
)
