package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page int // Zero-based page number
}

// ParseQueryParams parses pagination parameters from an HTTP request query string.
// Returns Params with defaults if the page parameter is missing.
//
// Query parameters:
//   - page: Zero-based page number (must be a non-negative integer)
//
// Returns an error if the parameter is invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{Page: config.DefaultPage}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return params, fmt.Errorf("invalid query parameter: page must be a non-negative integer")
		}
		if page > config.MaxPage {
			return params, fmt.Errorf("invalid query parameter: page must not exceed %d", config.MaxPage)
		}
		params.Page = page
	}

	return params, nil
}
