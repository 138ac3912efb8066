package colour

// Step limits for the symmetric pair search.
const (
	balancedMaxSteps     = 50
	highContrastMaxSteps = 60
)

// Pair is a background/text colour pair in canonical hex form.
type Pair struct {
	Background string `json:"bg_color"`
	Text       string `json:"text_color"`
}

// SymmetricSearch shifts the lightness of both colours by the same amount in opposite
// directions, one step at a time, and returns the first pair whose truncated contrast ratio
// reaches threshold.
// The lighter colour (the background on a tie) moves towards white.
func SymmetricSearch(bg, text HSL, threshold float64, maxSteps int) (Pair, bool) {
	sign := 1.0
	if bg.L < text.L {
		sign = -1.0
	}

	for i := 0; i <= maxSteps; i++ {
		shift := sign * float64(i)
		b := HSLToRGB(bg.WithLightness(bg.L + shift))
		t := HSLToRGB(text.WithLightness(text.L - shift))
		if Classify(ContrastRatio(b, t)).Ratio >= threshold {
			return Pair{Background: b.Hex(), Text: t.Hex()}, true
		}
	}
	return Pair{}, false
}

// PairSuggestions proposes up to two pairs that adjust both colours. Malformed colours produce none.
func PairSuggestions(bg, text string) []Suggestion {
	bgRGB, ok := HexToRGB(bg)
	if !ok {
		return nil
	}
	textRGB, ok := HexToRGB(text)
	if !ok {
		return nil
	}
	original := Pair{Background: bgRGB.Hex(), Text: textRGB.Hex()}
	bgHSL := RGBToHSL(bgRGB)
	textHSL := RGBToHSL(textRGB)

	suggestions := make([]Suggestion, 0, 2)

	balanced, foundBalanced := SymmetricSearch(bgHSL, textHSL, RatioAANormal, balancedMaxSteps)
	if foundBalanced && balanced != original {
		suggestions = append(suggestions, newSuggestion(
			"Balanced adjustment (both)",
			"Nudges the lightness of both colours so each keeps its hue while the pair gains contrast.",
			balanced.Background, balanced.Text))
	}

	high, found := SymmetricSearch(bgHSL, textHSL, RatioAAANormal, highContrastMaxSteps)
	if found && !(foundBalanced && high == balanced) && high != original {
		suggestions = append(suggestions, newSuggestion(
			"High contrast (both)",
			"Moves both colours further apart to reach the AAA level (7:1).",
			high.Background, high.Text))
	}

	return suggestions
}
