// Package colour provides the colour-space conversions, WCAG contrast checks and
// lightness-preserving suggestion searches used by irocheck.
package colour

import (
	"fmt"
	"math"
	"regexp"
)

// hexPattern matches an optional leading '#' followed by exactly six hex digits.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB represents a colour as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical hex form of the colour (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour as hue (0-360), saturation (0-100) and lightness (0-100).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hsl.H, hsl.S, hsl.L)
}

// HexToRGB parses a six digit hex colour with an optional leading '#'.
// Shorthand and any other notation are rejected.
func HexToRGB(hex string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}
	return RGB{
		R: parseHexByte(m[1]),
		G: parseHexByte(m[2]),
		B: parseHexByte(m[3]),
	}, true
}

// RGBToHex formats three channels as a canonical "#RRGGBB" string.
func RGBToHex(r, g, b uint8) string {
	return RGB{R: r, G: g, B: b}.Hex()
}

// Normalise returns the canonical form of a hex colour, or false if it does not parse.
func Normalise(hex string) (string, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}

// parseHexByte converts a two-character hex string to a byte.
// Callers guarantee the input matched hexPattern.
func parseHexByte(s string) uint8 {
	var result uint8
	for i := 0; i < len(s); i++ {
		result *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			result += c - '0'
		case c >= 'a' && c <= 'f':
			result += c - 'a' + 10
		case c >= 'A' && c <= 'F':
			result += c - 'A' + 10
		}
	}
	return result
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	var h, s float64
	l := (maxVal + minVal) / 2

	if maxVal != minVal {
		d := maxVal - minVal
		if l > 0.5 {
			s = d / (2 - maxVal - minVal)
		} else {
			s = d / (maxVal + minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space, rounding each channel to the nearest integer.
func HSLToRGB(hsl HSL) RGB {
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100

	var r, g, b float64
	if s == 0 {
		// Achromatic (grey).
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

// hueToRGB is a helper for HSL to RGB conversion. t is a hue fraction in turns.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// toChannel scales a unit value to a rounded 8-bit channel.
func toChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}

// WithLightness returns the colour with its hue and saturation kept and lightness replaced.
func (hsl HSL) WithLightness(l float64) HSL {
	return HSL{H: hsl.H, S: hsl.S, L: clampLightness(l)}
}

// clampLightness clamps a lightness value to [0, 100].
func clampLightness(l float64) float64 {
	return math.Max(0, math.Min(100, l))
}
