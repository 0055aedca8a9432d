package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing board, non-positive IDs, or when the user needs to
	// provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Card not found, board not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable description from stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error or a rejected transition.
	// Use for: Empty titles or reasons, invalid layouts, and the BLOCKED,
	// ALREADY_FINISHED, CANCELLED, WRONG_BOARD and INVALID_STATE kinds.
	ExitValidation = 5
)
