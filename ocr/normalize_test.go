package ocr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Hello World", "Hello World"},
		{"  Hello   World  ", "Hello World"},
		{"Line one\nLine two\n", "Line one Line two"},
		{"Tabs\there\ttoo", "Tabs here too"},
		{"\n\n", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
