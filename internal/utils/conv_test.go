package utils

import "testing"

func TestStringToInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"-7", -7},
		{"", 0},
		{"abc", 0},
		{"3.5", 0},
	}
	for _, tt := range tests {
		if got := StringToInt(tt.in); got != tt.want {
			t.Errorf("StringToInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
