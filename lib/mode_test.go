package wallpaperlib

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"every", Every, true},
		{"current", Current, true},
		{"Every", 0, false},
		{" current", 0, false},
		{"banana", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if !tc.ok {
			if !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) returned %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tc.in)
		}
	}
}

func TestParsePosition(t *testing.T) {
	for i, name := range []string{"center", "tile", "stretch", "fit", "fill", "span"} {
		p, err := ParsePosition(name)
		if err != nil {
			t.Fatalf("ParsePosition(%q) returned %v", name, err)
		}
		if p != Position(i) {
			t.Errorf("ParsePosition(%q) = %d, want %d", name, p, i)
		}
	}

	if p, err := ParsePosition("FILL"); err != nil || p != PositionFill {
		t.Errorf("ParsePosition(FILL) = %v, %v", p, err)
	}
	if _, err := ParsePosition("zoom"); err == nil {
		t.Error("ParsePosition(zoom) succeeded")
	}
}
