package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/questions/\d+$`), Template: "/questions/:id"},
	{Pattern: regexp.MustCompile(`^/answers/\d+$`), Template: "/answers/:id"},
	{Pattern: regexp.MustCompile(`^/users/\d+$`), Template: "/users/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /questions/123) to template format (e.g., /questions/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/questions/123")        // "/questions/:id"
//	NormalizePath("/answers/456")          // "/answers/:id"
//	NormalizePath("/questions")            // "/questions" (unchanged)
//	NormalizePath("/health")               // "/health" (unchanged)
//	NormalizePath("/questions/123?page=1") // "/questions/:id"
//	NormalizePath("/questions/123/")       // "/questions/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths like /health, /metrics and /auth/token pass through unchanged
	return path
}
