package pathutil

import "testing"

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{name: "valid id", path: "/questions/123", prefix: "/questions/", want: 123},
		{name: "single digit", path: "/answers/7", prefix: "/answers/", want: 7},
		{name: "zero rejected", path: "/questions/0", prefix: "/questions/", wantErr: true},
		{name: "negative rejected", path: "/questions/-5", prefix: "/questions/", wantErr: true},
		{name: "non-numeric", path: "/questions/abc", prefix: "/questions/", wantErr: true},
		{name: "empty remainder", path: "/questions/", prefix: "/questions/", wantErr: true},
		{name: "trailing segment", path: "/questions/12/extra", prefix: "/questions/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.path, tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ExtractID() = %d, want %d", got, tt.want)
			}
		})
	}
}
