package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/irocheck/internal/colour"
	"github.com/jmylchreest/irocheck/internal/palette"
	"github.com/jmylchreest/irocheck/internal/render"
)

// newPaletteCmd represents the palette command and its subcommands.
func newPaletteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palette",
		Aliases: []string{"palettes"},
		Short:   "Manage saved colour pairs",
		Long: `Manage saved background/text colour pairs.

Pairs are stored as JSON in the file named by the store setting
(IROCHECK_STORE or "store" in the config file), newest first.
Ids may be abbreviated to any unique prefix.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved pairs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runPaletteList(cmd)
			},
		},
		&cobra.Command{
			Use:   "add [background text]",
			Short: "Save a colour pair",
			Args:  pairArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pair, err := a.resolvePair(args)
				if err != nil {
					return err
				}
				p, err := a.store().Add(pair.Background, pair.Text)
				if err != nil {
					return err
				}
				return a.printPalette(cmd, p)
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Check the contrast of a saved pair",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.store().Get(args[0])
				if err != nil {
					return err
				}
				return a.printContrast(cmd, colour.Pair{Background: p.Background, Text: p.Text})
			},
		},
		&cobra.Command{
			Use:     "delete <id>",
			Aliases: []string{"rm"},
			Short:   "Delete a saved pair",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.store().Delete(args[0])
				if err != nil {
					return err
				}
				a.info(cmd, "Deleted palette %s", shortID(p.ID))
				return nil
			},
		},
	)

	return cmd
}

// runPaletteList executes the palette list command.
func (a *app) runPaletteList(cmd *cobra.Command) error {
	palettes, err := a.store().List()
	if err != nil {
		return err
	}

	if a.cfg.Format == "json" {
		output, err := render.JSON(palettes)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	if len(palettes) == 0 {
		a.info(cmd, "No saved palettes in %s", a.cfg.Store)
		return nil
	}

	table := NewTable([]string{"ID", "BACKGROUND", "TEXT", "RATIO", "LEVEL", "SAVED"})
	for _, p := range palettes {
		result := p.Contrast()
		table.AddRow([]string{
			shortID(p.ID),
			p.Background,
			p.Text,
			fmt.Sprintf("%.2f", result.Ratio),
			render.Verdict(result),
			p.CreatedAt.Local().Format(time.DateTime),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

// printPalette writes a single saved palette.
func (a *app) printPalette(cmd *cobra.Command, p palette.Palette) error {
	if a.cfg.Format == "json" {
		output, err := render.JSON(p)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	result := p.Contrast()
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %s on %s (%.2f:1, %s)\n",
		shortID(p.ID), p.Text, p.Background, result.Ratio, render.Verdict(result))
	return nil
}

// shortID abbreviates an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
