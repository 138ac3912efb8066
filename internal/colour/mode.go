package colour

import "fmt"

// Mode selects which side of a colour pair a suggestion request adjusts.
type Mode int

const (
	// ModeText adjusts the text colour against a fixed background.
	ModeText Mode = iota
	// ModeBackground adjusts the background colour against fixed text.
	ModeBackground
	// ModeBoth adjusts both colours symmetrically.
	ModeBoth
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeBackground:
		return "bg"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseMode converts "text", "bg" or "both" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "text":
		return ModeText, nil
	case "bg", "background":
		return ModeBackground, nil
	case "both":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("invalid mode: %s (valid: text, bg, both)", s)
	}
}

// Suggestion is a candidate colour pair that clears a contrast threshold.
type Suggestion struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Background  string  `json:"bg_color"`
	Text        string  `json:"text_color"`
	Ratio       float64 `json:"ratio"`
}

// newSuggestion builds a suggestion and scores the pair it describes.
func newSuggestion(label, description, bg, text string) Suggestion {
	return Suggestion{
		Label:       label,
		Description: description,
		Background:  bg,
		Text:        text,
		Ratio:       CheckContrast(bg, text).Ratio,
	}
}

// Suggest dispatches to the adjuster for the given mode.
func Suggest(mode Mode, bg, text string) []Suggestion {
	switch mode {
	case ModeText:
		return SingleSuggestions(ModeText, text, bg)
	case ModeBackground:
		return SingleSuggestions(ModeBackground, bg, text)
	case ModeBoth:
		return PairSuggestions(bg, text)
	default:
		return nil
	}
}
