// Package render formats contrast results, suggestions and colour swatches for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/irocheck/internal/colour"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns a solid block of the given colour, width characters wide.
// With colour disabled it returns spaces of the same width.
func Swatch(c colour.RGB, width int, enabled bool) string {
	if width <= 0 {
		width = defaultWidth
	}
	block := strings.Repeat(" ", width)
	if !enabled {
		return block
	}
	return bgCode(c) + block + ansiReset
}

// SwatchWithText returns a colour block with centred text drawn in whichever of black or
// white contrasts more with the block.
func SwatchWithText(c colour.RGB, text string, width int, enabled bool) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}
	if !enabled {
		return displayText
	}

	fg := colour.RGB{R: 255, G: 255, B: 255}
	if colour.Luminance(c) > 0.5 {
		fg = colour.RGB{}
	}
	return bgCode(c) + fgCode(fg) + displayText + ansiReset
}

// Sample renders text in the text colour on the background colour.
func Sample(pair colour.Pair, text string, enabled bool) string {
	if !enabled {
		return text
	}
	bg, okBG := colour.HexToRGB(pair.Background)
	fg, okFG := colour.HexToRGB(pair.Text)
	if !okBG || !okFG {
		return text
	}
	return bgCode(bg) + fgCode(fg) + text + ansiReset
}

// Labelled formats a swatch, a label and the hex code on one line.
func Labelled(c colour.RGB, label string, width int, enabled bool) string {
	return fmt.Sprintf("%s  %-12s %s", Swatch(c, width, enabled), label, c.Hex())
}

func bgCode(c colour.RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgCode(c colour.RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
