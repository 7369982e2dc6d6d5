package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "question id", path: "/questions/123", want: "/questions/:id"},
		{name: "answer id", path: "/answers/456", want: "/answers/:id"},
		{name: "user id", path: "/users/7", want: "/users/:id"},
		{name: "static list path", path: "/questions", want: "/questions"},
		{name: "health endpoint", path: "/health", want: "/health"},
		{name: "token endpoint", path: "/auth/token", want: "/auth/token"},
		{name: "query string stripped", path: "/questions/123?page=1", want: "/questions/:id"},
		{name: "trailing slash stripped", path: "/questions/123/", want: "/questions/:id"},
		{name: "root path", path: "/", want: "/"},
		{name: "unknown dynamic path untouched", path: "/comments/9", want: "/comments/9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
