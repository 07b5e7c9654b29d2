package main

import (
	"errors"
	"testing"

	lib "github.com/awused/monitor-wallpaper/lib"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		positional string
		want       lib.Mode
		wantErr    bool
	}{
		{"default", "", "", lib.Every, false},
		{"flag", "current", "", lib.Current, false},
		{"positional", "", "current", lib.Current, false},
		{"flag wins", "every", "current", lib.Every, false},
		{"bad flag", "banana", "", 0, true},
		{"bad positional", "", "banana", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := selectMode(tc.flag, tc.positional)
			if tc.wantErr {
				if !errors.Is(err, lib.ErrInvalidMode) {
					t.Errorf("got %v, want ErrInvalidMode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("selectMode returned %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
