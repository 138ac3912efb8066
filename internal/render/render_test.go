package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/irocheck/internal/colour"
)

func TestSwatch(t *testing.T) {
	red := colour.RGB{R: 255}

	got := Swatch(red, 4, true)
	if !strings.HasPrefix(got, "\033[48;2;255;0;0m") || !strings.HasSuffix(got, ansiReset) {
		t.Errorf("Swatch() = %q", got)
	}
	if plain := Swatch(red, 4, false); plain != "    " {
		t.Errorf("Swatch() without colour = %q, want four spaces", plain)
	}
	if def := Swatch(red, 0, false); len(def) != defaultWidth {
		t.Errorf("Swatch() default width = %d, want %d", len(def), defaultWidth)
	}
}

func TestSwatchWithText(t *testing.T) {
	tests := []struct {
		name   string
		c      colour.RGB
		text   string
		width  int
		wantFg string
		want   string
	}{
		{name: "dark text on light", c: colour.RGB{R: 255, G: 255, B: 255}, text: "ab", width: 6, wantFg: "\033[38;2;0;0;0m", want: "  ab  "},
		{name: "light text on dark", c: colour.RGB{}, text: "abc", width: 6, wantFg: "\033[38;2;255;255;255m", want: " abc  "},
		{name: "truncated", c: colour.RGB{}, text: "abcdefgh", width: 4, wantFg: "\033[38;2;255;255;255m", want: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if plain := SwatchWithText(tt.c, tt.text, tt.width, false); plain != tt.want {
				t.Errorf("plain = %q, want %q", plain, tt.want)
			}
			got := SwatchWithText(tt.c, tt.text, tt.width, true)
			if !strings.Contains(got, tt.wantFg) || !strings.Contains(got, tt.want) {
				t.Errorf("SwatchWithText() = %q", got)
			}
		})
	}
}

func TestContrastText(t *testing.T) {
	pair := colour.Pair{Background: "#FFFFFF", Text: "#64748B"}
	out := Contrast(pair, colour.CheckContrast(pair.Background, pair.Text), Options{})

	for _, want := range []string{
		"background #FFFFFF  text #64748B",
		"Contrast ratio: 4.75:1  good (AA)",
		"AA normal text   pass",
		"AAA normal text  fail",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("output contains ANSI codes with colour disabled:\n%s", out)
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		bg, text string
		want     string
	}{
		{bg: "#FFFFFF", text: "#000000", want: "excellent (AAA)"},
		{bg: "#FFFFFF", text: "#64748B", want: "good (AA)"},
		{bg: "#FFFFFF", text: "#949494", want: "large text only (AA large)"},
		{bg: "#FFFFFF", text: "#EEEEEE", want: "fails WCAG"},
		{bg: "#FFFFFF", text: "nope", want: "invalid colours"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Verdict(colour.CheckContrast(tt.bg, tt.text)); got != tt.want {
				t.Errorf("Verdict() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuggestionsText(t *testing.T) {
	suggestions := colour.Suggest(colour.ModeText, "#FFFFFF", "#A0A0A0")
	out := Suggestions(colour.ModeText, suggestions, Options{})

	for _, want := range []string{
		"1. Natural adjustment (AA)  4.60:1",
		"background #FFFFFF  text #757575",
		"3. Clarity (lightness first)  19.43:1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	empty := Suggestions(colour.ModeBoth, nil, Options{})
	if !strings.HasPrefix(empty, "No both suggestions") {
		t.Errorf("empty output = %q", empty)
	}
}

func TestCardContainsSample(t *testing.T) {
	card := Card(colour.Pair{Background: "#FFFFFF", Text: "#000000"}, false)
	if !strings.Contains(card, sampleText) {
		t.Errorf("card missing sample text:\n%s", card)
	}
	if !strings.Contains(card, "╭") {
		t.Errorf("card missing rounded border:\n%s", card)
	}
}

func TestJSON(t *testing.T) {
	out, err := JSON(ContrastJSON{
		Background: "#FFFFFF",
		Text:       "#000000",
		Result:     colour.CheckContrast("#FFFFFF", "#000000"),
	})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var decoded struct {
		Result struct {
			Ratio     float64 `json:"ratio"`
			AAANormal bool    `json:"aaa_normal"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded.Result.Ratio != 21 || !decoded.Result.AAANormal {
		t.Errorf("decoded = %+v", decoded)
	}
}
