package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvActor overrides the name recorded on block ledger entries
const EnvActor = "QUADRO_ACTOR"

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil || currentUser.Username == "" {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}

// Actor returns the name to record as the author of a block or unblock.
// QUADRO_ACTOR wins over the OS username so scripts and bots can identify themselves.
func Actor() string {
	if actor := strings.TrimSpace(os.Getenv(EnvActor)); actor != "" {
		return actor
	}
	return GetCurrentUsername()
}
