package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// guideStep is one step of the walkthrough.
type guideStep struct {
	title   string
	content string
	example string
}

var guideSteps = []guideStep{
	{
		title:   "Choose colours",
		content: "Pick a background and a text colour as six digit hex codes.",
		example: `irocheck check "#FFFFFF" "#64748B"`,
	},
	{
		title:   "Read the score",
		content: "The ratio is compared against WCAG AA (pass) and AAA (very readable) for normal and large text.",
		example: `irocheck check -f json "#FFFFFF" "#A0A0A0"`,
	},
	{
		title:   "Adjust automatically",
		content: "Close to passing? Suggestions keep the hue and only change lightness. Adjust the text, the background or both.",
		example: `irocheck suggest --mode both "#FFFFFF" "#A0A0A0"`,
	},
	{
		title:   "Save",
		content: "Keep pairs you like and bring them back later.",
		example: `irocheck suggest --apply 1 --save "#FFFFFF" "#A0A0A0" && irocheck palette list`,
	},
}

// newGuideCmd represents the guide command
func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Walk through checking and fixing a colour pair",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for i, step := range guideSteps {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "STEP %d: %s\n", i+1, step.title)
				fmt.Fprintf(out, "  %s\n", step.content)
				fmt.Fprintf(out, "  $ %s\n", step.example)
			}
		},
	}
}
