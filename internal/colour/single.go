package colour

import (
	"math"
)

// Lightness pushed to by the clarity suggestion.
const (
	clarityDarkLightness  = 5
	clarityLightLightness = 95
)

var (
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{}
)

// BestLightness searches integer lightness values 0-100 for the target colour, keeping its hue
// and saturation, and returns the candidate closest to the original lightness whose contrast
// against reference is at least threshold. The lowest lightness wins a tie.
func BestLightness(target, reference RGB, threshold float64) (RGB, bool) {
	refLum := Luminance(reference)
	hsl := RGBToHSL(target)

	var best RGB
	found := false
	minDiff := math.Inf(1)

	for l := 0; l <= 100; l++ {
		candidate := HSLToRGB(hsl.WithLightness(float64(l)))
		if luminanceRatio(Luminance(candidate), refLum) < threshold {
			continue
		}
		if diff := math.Abs(float64(l) - hsl.L); diff < minDiff {
			minDiff = diff
			best = candidate
			found = true
		}
	}

	return best, found
}

// SingleSuggestions proposes up to three replacements for target, which sits on the side of the
// pair given by mode, while reference stays fixed. ModeBoth and malformed colours produce none.
func SingleSuggestions(mode Mode, target, reference string) []Suggestion {
	if mode != ModeText && mode != ModeBackground {
		return nil
	}
	targetRGB, ok := HexToRGB(target)
	if !ok {
		return nil
	}
	refRGB, ok := HexToRGB(reference)
	if !ok {
		return nil
	}
	original := targetRGB.Hex()
	refHex := refRGB.Hex()

	pair := func(label, description, hex string) Suggestion {
		if mode == ModeText {
			return newSuggestion(label, description, refHex, hex)
		}
		return newSuggestion(label, description, hex, refHex)
	}

	suggestions := make([]Suggestion, 0, 3)
	chosen := make(map[string]bool, 3)
	add := func(label, description, hex string) {
		suggestions = append(suggestions, pair(label, description, hex))
		chosen[hex] = true
	}

	// Natural adjustment (AA).
	natural := ""
	if rgb, ok := BestLightness(targetRGB, refRGB, RatioAANormal); ok {
		natural = rgb.Hex()
		if natural != original {
			add("Natural adjustment (AA)",
				"Keeps as much of the original colour as possible while meeting the 4.5:1 minimum.",
				natural)
		}
	}

	// High contrast (AAA), with a black/white fallback only when no hue-preserving colour qualifies.
	if rgb, ok := BestLightness(targetRGB, refRGB, RatioAAANormal); ok {
		if high := rgb.Hex(); high != natural && high != original {
			add("High contrast (AAA)",
				"Aims for the stricter AAA level (7:1) for better readability.",
				high)
		}
	} else {
		bw, ratio := strongestExtreme(refRGB)
		if hex := bw.Hex(); hex != natural && hex != original && ratio >= RatioAAANormal {
			add("Maximum contrast (black/white)",
				"Puts readability ahead of keeping the original hue.",
				hex)
		}
	}

	// Clarity: push lightness to the extreme opposite the reference.
	hsl := RGBToHSL(targetRGB)
	clarityL := float64(clarityLightLightness)
	if Luminance(refRGB) > 0.5 {
		clarityL = clarityDarkLightness
	}
	if clarity := HSLToRGB(hsl.WithLightness(clarityL)).Hex(); !chosen[clarity] && clarity != original {
		if s := pair("Clarity (lightness first)",
			"Widens the lightness gap so the text stands out sharply.",
			clarity); s.Ratio >= RatioAANormal {
			suggestions = append(suggestions, s)
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

// strongestExtreme returns white or black, whichever contrasts more with reference, with its
// truncated ratio. Black wins a tie.
func strongestExtreme(reference RGB) (RGB, float64) {
	ratioW := Classify(ContrastRatio(white, reference)).Ratio
	ratioB := Classify(ContrastRatio(black, reference)).Ratio
	if ratioW > ratioB {
		return white, ratioW
	}
	return black, ratioB
}
