package wallpaperlib

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMode = errors.New("invalid mode")

type Mode int

const (
	// Every monitor gets the same wallpaper
	Every Mode = iota
	// Only the monitor under the mouse cursor
	Current
)

var modeNames = map[Mode]string{
	Every:   "every",
	Current: "current",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf(
		"%w %q, expected one of: %s", ErrInvalidMode, s, strings.Join(ModeNames(), ", "))
}

func ModeNames() []string {
	return []string{Every.String(), Current.String()}
}

// Position mirrors DESKTOP_WALLPAPER_POSITION
type Position int

const (
	PositionCenter Position = iota
	PositionTile
	PositionStretch
	PositionFit
	PositionFill
	PositionSpan
)

var positionNames = []string{"center", "tile", "stretch", "fit", "fill", "span"}

func (p Position) String() string {
	if p >= 0 && int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

func ParsePosition(s string) (Position, error) {
	for i, name := range positionNames {
		if strings.EqualFold(s, name) {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf(
		"Invalid Position %q, expected one of: %s", s, strings.Join(positionNames, ", "))
}
