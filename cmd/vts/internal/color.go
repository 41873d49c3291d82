package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a parsed hex color. Alpha defaults to 255 when the input has
// no alpha component.
type RGBA struct {
	R, G, B, A uint8
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func ParseHexColor(value string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("could not parse %q as a hex color value", value)
	}

	parsed, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("could not parse %q as a hex color value", value)
	}

	if len(hex) == 6 {
		return RGBA{
			R: uint8(parsed >> 16),
			G: uint8(parsed >> 8),
			B: uint8(parsed),
			A: 255,
		}, nil
	}
	return RGBA{
		R: uint8(parsed >> 24),
		G: uint8(parsed >> 16),
		B: uint8(parsed >> 8),
		A: uint8(parsed),
	}, nil
}
