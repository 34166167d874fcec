package zipstream

import "testing"

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"a/b/c.txt", "a/b/c.txt"},
		{`a\b\c.txt`, "a/b/c.txt"},
		{"/etc/passwd", "etc/passwd"},
		{"///leading", "leading"},
	}
	for _, tt := range tests {
		if got := normalizeName(tt.in); got != tt.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNeedsUTF8Flag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"ascii.txt", false},
		{"café.txt", true},
		{"日本語.txt", true},
		{"~!@#$%^&*()_+.txt", false},
	}
	for _, tt := range tests {
		if got := needsUTF8Flag(tt.name); got != tt.want {
			t.Errorf("needsUTF8Flag(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
