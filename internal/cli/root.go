// Package cli provides the command-line interface for irocheck.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/irocheck/internal/colour"
	"github.com/jmylchreest/irocheck/internal/config"
	"github.com/jmylchreest/irocheck/internal/palette"
	"github.com/jmylchreest/irocheck/internal/render"
	"github.com/jmylchreest/irocheck/internal/version"
)

// app holds state shared by all commands of one root command.
type app struct {
	// Global flags.
	verbose    bool
	quiet      bool
	configPath string
	format     string
	noPreview  bool

	cfg    config.Config
	logger hclog.Logger
	colour bool
}

// NewRootCmd builds the irocheck command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "irocheck",
		Short: "Check and fix colour contrast",
		Long: `irocheck checks whether a background and text colour pair meets the WCAG
contrast levels and suggests nearby colours that do, keeping the hue and
saturation of the originals.

Colours are six digit hex codes, with or without a leading '#'.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "output format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&a.noPreview, "no-preview", false, "do not draw colour swatches and sample text")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newSwapCmd(a))
	rootCmd.AddCommand(newSuggestCmd(a))
	rootCmd.AddCommand(newPaletteCmd(a))
	rootCmd.AddCommand(newGuideCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration and logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.noPreview {
		cfg.Preview = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.colour = cfg.Preview && isTerminal(cmd.OutOrStdout())

	a.logger.Debug("configuration resolved",
		"store", cfg.Store, "format", cfg.Format, "preview", cfg.Preview, "colour", a.colour)
	return nil
}

// newLogger creates the command logger: debug when verbose, silent when quiet, warnings otherwise.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	opts := &hclog.LoggerOptions{
		Name:   "irocheck",
		Output: w,
		Level:  hclog.Warn,
	}
	switch {
	case quiet:
		opts.Output = io.Discard
		opts.Level = hclog.Off
	case verbose:
		opts.Level = hclog.Debug
	}
	return hclog.New(opts)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

func (a *app) renderOptions() render.Options {
	return render.Options{Colour: a.colour, Preview: a.cfg.Preview}
}

func (a *app) store() *palette.Store {
	return palette.NewStore(a.cfg.Store, a.logger)
}

// info prints a status line to stderr unless quiet.
func (a *app) info(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// pairArgs accepts either no colours (use the configured defaults) or a background and a text colour.
func pairArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("accepts 0 or 2 args (background and text colour), received %d", len(args))
	}
	return nil
}

// resolvePair returns the canonical pair from args or the configured defaults.
func (a *app) resolvePair(args []string) (colour.Pair, error) {
	bg, text := a.cfg.DefaultBackground, a.cfg.DefaultText
	if len(args) == 2 {
		bg, text = args[0], args[1]
	}
	bgHex, ok := colour.Normalise(bg)
	if !ok {
		return colour.Pair{}, fmt.Errorf("invalid background colour: %q (expected #RRGGBB)", bg)
	}
	textHex, ok := colour.Normalise(text)
	if !ok {
		return colour.Pair{}, fmt.Errorf("invalid text colour: %q (expected #RRGGBB)", text)
	}
	return colour.Pair{Background: bgHex, Text: textHex}, nil
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
