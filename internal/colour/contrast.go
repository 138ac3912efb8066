package colour

import (
	"math"
)

// WCAG 2.x contrast thresholds.
const (
	// RatioAALarge is the minimum ratio for large text at level AA.
	RatioAALarge = 3.0
	// RatioAANormal is the minimum ratio for normal text at level AA (and large text at AAA).
	RatioAANormal = 4.5
	// RatioAAANormal is the minimum ratio for normal text at level AAA.
	RatioAAANormal = 7.0
)

// ContrastResult classifies a colour pair against the WCAG thresholds.
// Ratio is truncated (not rounded) to two decimal places.
type ContrastResult struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAANormal bool    `json:"aaa_normal"`
	AAALarge  bool    `json:"aaa_large"`
}

// Passes reports whether any WCAG level is met.
func (r ContrastResult) Passes() bool {
	return r.AALarge
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255)
	g := gammaCorrect(float64(rgb.G) / 255)
	b := gammaCorrect(float64(rgb.B) / 255)
	// Explicit conversions stop the compiler fusing multiply-add, keeping results identical across architectures.
	return float64(r*0.2126) + float64(g*0.7152) + float64(b*0.0722)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the untruncated contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is black against white.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	return luminanceRatio(Luminance(c1), Luminance(c2))
}

// luminanceRatio computes the contrast ratio from two relative luminances.
func luminanceRatio(l1, l2 float64) float64 {
	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Classify builds a ContrastResult from an untruncated ratio.
func Classify(ratio float64) ContrastResult {
	return ContrastResult{
		Ratio:     math.Floor(ratio*100) / 100,
		AANormal:  ratio >= RatioAANormal,
		AALarge:   ratio >= RatioAALarge,
		AAANormal: ratio >= RatioAAANormal,
		AAALarge:  ratio >= RatioAANormal,
	}
}

// CheckContrast parses two hex colours and classifies their contrast.
// If either colour is malformed the zero result is returned.
func CheckContrast(hexA, hexB string) ContrastResult {
	a, okA := HexToRGB(hexA)
	b, okB := HexToRGB(hexB)
	if !okA || !okB {
		return ContrastResult{}
	}
	return Classify(ContrastRatio(a, b))
}
