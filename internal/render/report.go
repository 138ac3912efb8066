package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/irocheck/internal/colour"
)

const sampleText = "The quick brown fox jumps over the lazy dog"

// Options controls text rendering.
type Options struct {
	// Colour enables ANSI colour output.
	Colour bool
	// Preview adds swatches and a sample card.
	Preview bool
}

// level describes one WCAG check.
type level struct {
	name      string
	threshold float64
	pass      func(colour.ContrastResult) bool
}

var levels = []level{
	{name: "AA normal text", threshold: colour.RatioAANormal, pass: func(r colour.ContrastResult) bool { return r.AANormal }},
	{name: "AA large text", threshold: colour.RatioAALarge, pass: func(r colour.ContrastResult) bool { return r.AALarge }},
	{name: "AAA normal text", threshold: colour.RatioAAANormal, pass: func(r colour.ContrastResult) bool { return r.AAANormal }},
	{name: "AAA large text", threshold: colour.RatioAANormal, pass: func(r colour.ContrastResult) bool { return r.AAALarge }},
}

// Verdict summarises a result in a few words.
func Verdict(r colour.ContrastResult) string {
	switch {
	case r.AAANormal:
		return "excellent (AAA)"
	case r.AANormal:
		return "good (AA)"
	case r.AALarge:
		return "large text only (AA large)"
	case r.Ratio == 0:
		return "invalid colours"
	default:
		return "fails WCAG"
	}
}

// Contrast renders a contrast check as text.
func Contrast(pair colour.Pair, r colour.ContrastResult, opts Options) string {
	var sb strings.Builder

	if opts.Preview {
		bg, _ := colour.HexToRGB(pair.Background)
		fg, _ := colour.HexToRGB(pair.Text)
		sb.WriteString(Labelled(bg, "background", 4, opts.Colour) + "\n")
		sb.WriteString(Labelled(fg, "text", 4, opts.Colour) + "\n")
		sb.WriteString(Card(pair, opts.Colour) + "\n")
	} else {
		fmt.Fprintf(&sb, "background %s  text %s\n", pair.Background, pair.Text)
	}

	fmt.Fprintf(&sb, "Contrast ratio: %.2f:1  %s\n", r.Ratio, Verdict(r))
	for _, l := range levels {
		mark := "fail"
		if l.pass(r) {
			mark = "pass"
		}
		fmt.Fprintf(&sb, "  %-16s %-4s  (>= %.1f:1)\n", l.name, mark, l.threshold)
	}
	return sb.String()
}

// Card draws sample text in the pair's colours inside a bordered box.
func Card(pair colour.Pair, enabled bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	if enabled {
		style = style.
			Foreground(lipgloss.Color(pair.Text)).
			Background(lipgloss.Color(pair.Background)).
			BorderForeground(lipgloss.Color(pair.Text))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, "Aa  Heading", sampleText)
	return style.Render(body)
}

// Suggestions renders suggestions as a numbered list.
func Suggestions(mode colour.Mode, suggestions []colour.Suggestion, opts Options) string {
	if len(suggestions) == 0 {
		return fmt.Sprintf("No %s suggestions: no nearby colours clear the next threshold.\n", mode)
	}

	var sb strings.Builder
	for i, s := range suggestions {
		pair := colour.Pair{Background: s.Background, Text: s.Text}
		fmt.Fprintf(&sb, "%d. %s  %.2f:1\n", i+1, s.Label, s.Ratio)
		if opts.Preview {
			fmt.Fprintf(&sb, "   %s\n", Sample(pair, " "+sampleText[:20]+" ", opts.Colour))
		}
		fmt.Fprintf(&sb, "   background %s  text %s\n", s.Background, s.Text)
		fmt.Fprintf(&sb, "   %s\n", s.Description)
	}
	return sb.String()
}

// ContrastJSON is the JSON form of a contrast check.
type ContrastJSON struct {
	Background string                `json:"bg_color"`
	Text       string                `json:"text_color"`
	Result     colour.ContrastResult `json:"result"`
}

// SuggestionsJSON is the JSON form of a suggestion request.
type SuggestionsJSON struct {
	Mode        string                `json:"mode"`
	Background  string                `json:"bg_color"`
	Text        string                `json:"text_color"`
	Result      colour.ContrastResult `json:"result"`
	Suggestions []colour.Suggestion   `json:"suggestions"`
}

// JSON marshals v with indentation and a trailing newline.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
