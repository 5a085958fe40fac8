package model

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseHex for malformed hex colors.
var ErrInvalidColor = errors.New("invalid hex color")

// RGB is a decoded 8-bit RGB color.
type RGB struct {
	R, G, B uint8
}

// ParseHex decodes a "#rrggbb" hex color. A missing leading '#' and
// uppercase digits are tolerated; anything else fails with
// ErrInvalidColor.
func ParseHex(s string) (RGB, error) {
	h := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Packed returns the color packed as 0xRRGGBB. Used as a deterministic
// ordering key when two colors are equally frequent.
func (c RGB) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
