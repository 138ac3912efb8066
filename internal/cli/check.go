package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/irocheck/internal/colour"
	"github.com/jmylchreest/irocheck/internal/render"
	"github.com/jmylchreest/irocheck/internal/session"
)

// newCheckCmd represents the check command
func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [background text]",
		Short: "Check the contrast of a colour pair",
		Long: `Check the WCAG contrast ratio of a background and text colour.

The ratio is truncated to two decimal places and compared against the
AA (4.5:1 normal, 3:1 large text) and AAA (7:1 normal, 4.5:1 large text)
levels. Without arguments the configured default pair is checked.

Examples:
  # Check slate text on white
  irocheck check "#FFFFFF" "#64748B"

  # Output as JSON
  irocheck check -f json ffffff 64748b`,
		Args: pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := a.resolvePair(args)
			if err != nil {
				return err
			}
			return a.printContrast(cmd, pair)
		},
	}
}

// newSwapCmd represents the swap command
func newSwapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "swap [background text]",
		Short: "Check the pair with background and text exchanged",
		Args:  pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := a.resolvePair(args)
			if err != nil {
				return err
			}
			s, err := session.New(pair.Background, pair.Text)
			if err != nil {
				return err
			}
			s.Swap()
			return a.printContrast(cmd, s.Current())
		},
	}
}

// printContrast writes the contrast check for pair in the configured format.
func (a *app) printContrast(cmd *cobra.Command, pair colour.Pair) error {
	result := colour.CheckContrast(pair.Background, pair.Text)
	a.logger.Debug("checked contrast", "bg", pair.Background, "text", pair.Text, "ratio", result.Ratio)

	var output string
	switch a.cfg.Format {
	case "json":
		var err error
		output, err = render.JSON(render.ContrastJSON{
			Background: pair.Background,
			Text:       pair.Text,
			Result:     result,
		})
		if err != nil {
			return err
		}
	default:
		output = render.Contrast(pair, result, a.renderOptions())
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
