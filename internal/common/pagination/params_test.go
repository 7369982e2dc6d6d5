package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		url      string
		wantPage int
		wantErr  bool
	}{
		{name: "no parameters defaults to first page", url: "/questions", wantPage: 0, wantErr: false},
		{name: "explicit page", url: "/questions?page=3", wantPage: 3, wantErr: false},
		{name: "page zero", url: "/questions?page=0", wantPage: 0, wantErr: false},
		{name: "negative page", url: "/questions?page=-1", wantErr: true},
		{name: "non-numeric page", url: "/questions?page=abc", wantErr: true},
		{name: "page over maximum", url: "/questions?page=9999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			params, err := ParseQueryParams(r, cfg)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQueryParams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && params.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", params.Page, tt.wantPage)
			}
		})
	}
}
