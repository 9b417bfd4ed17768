package transcript

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with extra params", "https://www.youtube.com/watch?t=30&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short url with query", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ", true},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no scheme", "www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"empty", "", "", false},
		{"too short id", "abc123", "", false},
		{"unrelated url", "https://example.com/page", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.input)
			if ok != tt.ok {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
