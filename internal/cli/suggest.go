package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/irocheck/internal/colour"
	"github.com/jmylchreest/irocheck/internal/render"
	"github.com/jmylchreest/irocheck/internal/session"
)

// modeValue adapts colour.Mode to a command-line flag.
type modeValue struct {
	mode *colour.Mode
}

var _ pflag.Value = modeValue{}

func (m modeValue) String() string {
	if m.mode == nil {
		return colour.ModeText.String()
	}
	return m.mode.String()
}

func (m modeValue) Set(s string) error {
	mode, err := colour.ParseMode(s)
	if err != nil {
		return err
	}
	*m.mode = mode
	return nil
}

func (m modeValue) Type() string {
	return "mode"
}

// newSuggestCmd represents the suggest command
func newSuggestCmd(a *app) *cobra.Command {
	var (
		mode  = colour.ModeText
		apply int
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [background text]",
		Short: "Suggest nearby colours that meet WCAG contrast",
		Long: `Suggest colours close to the originals that meet the WCAG contrast levels.

Modes:
  text  keep the background, adjust the text colour (up to 3 suggestions)
  bg    keep the text, adjust the background colour (up to 3 suggestions)
  both  shift both colours apart symmetrically (up to 2 suggestions)

Suggestions keep the hue and saturation of the adjusted colour and change
only its lightness. Fewer suggestions than the maximum is normal: duplicates
and options that do not reach their level are left out.

Examples:
  # Suggest text colours for grey on white
  irocheck suggest "#FFFFFF" "#A0A0A0"

  # Adjust both colours and apply the first suggestion
  irocheck suggest --mode both --apply 1 "#1E293B" "#334155"

  # Apply and save the second background suggestion
  irocheck suggest -m bg --apply 2 --save "#3B82F6" "#FFFFFF"`,
		Args: pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSuggest(cmd, args, mode, apply, save)
		},
	}

	cmd.Flags().VarP(modeValue{mode: &mode}, "mode", "m", "colour to adjust (text, bg, both)")
	cmd.Flags().IntVar(&apply, "apply", 0, "apply the numbered suggestion and show the result")
	cmd.Flags().BoolVar(&save, "save", false, "save the resulting pair to the palette store")

	return cmd
}

// runSuggest executes the suggest command.
func (a *app) runSuggest(cmd *cobra.Command, args []string, mode colour.Mode, apply int, save bool) error {
	pair, err := a.resolvePair(args)
	if err != nil {
		return err
	}
	s, err := session.New(pair.Background, pair.Text)
	if err != nil {
		return err
	}

	suggestions := s.Suggestions(mode)
	a.logger.Debug("generated suggestions", "mode", mode.String(), "bg", pair.Background, "text", pair.Text, "count", len(suggestions))

	if apply < 0 || apply > len(suggestions) {
		return fmt.Errorf("cannot apply suggestion %d: %d available", apply, len(suggestions))
	}

	var output string
	switch a.cfg.Format {
	case "json":
		output, err = render.JSON(render.SuggestionsJSON{
			Mode:        mode.String(),
			Background:  pair.Background,
			Text:        pair.Text,
			Result:      s.Result(),
			Suggestions: suggestions,
		})
		if err != nil {
			return err
		}
	default:
		output = render.Contrast(pair, s.Result(), render.Options{Colour: a.colour}) + "\n" +
			render.Suggestions(mode, suggestions, a.renderOptions())
	}
	fmt.Fprint(cmd.OutOrStdout(), output)

	if apply > 0 {
		chosen := suggestions[apply-1]
		if err := s.Preview(chosen); err != nil {
			return err
		}
		if err := s.Confirm(); err != nil {
			return err
		}
		a.logger.Debug("applied suggestion", "label", chosen.Label, "bg", chosen.Background, "text", chosen.Text)
		if a.cfg.Format != "json" {
			fmt.Fprintf(cmd.OutOrStdout(), "\nApplied %q:\n", chosen.Label)
			fmt.Fprint(cmd.OutOrStdout(), render.Contrast(s.Current(), s.Result(), a.renderOptions()))
		}
	}

	if save {
		current := s.Current()
		p, err := a.store().Add(current.Background, current.Text)
		if err != nil {
			return fmt.Errorf("failed to save palette: %w", err)
		}
		a.info(cmd, "Saved palette %s (%s on %s)", shortID(p.ID), p.Text, p.Background)
	}

	return nil
}
