package util

import (
	"os"
	"strings"
)

// MaskToken hides most of an API token for log output. Short values are
// returned as-is; anything realistic keeps only its last 12 characters.
func MaskToken(t string) string {
	if len(t) < 20 {
		return t
	}
	return "..." + t[len(t)-12:]
}

// IsVerbose checks if the EDGEDECK_VERBOSE environment variable is set.
// Accepts: "1", "true", "yes" (case-insensitive)
func IsVerbose() bool {
	switch strings.ToLower(os.Getenv("EDGEDECK_VERBOSE")) {
	case "1", "true", "yes":
		return true
	}
	return false
}
