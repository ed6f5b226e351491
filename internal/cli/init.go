package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/termstat/internal/config"
	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/ui"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write .termstat.yaml into
	Interval       string // Pre-specified row interval
	Style          string // Pre-specified output style
	HeaderEvery    int    // Pre-specified header repeat
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

func newInitCmd() *cobra.Command {
	var opts InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .termstat.yaml configuration",
		Long: `Create a .termstat.yaml file in the current directory.

Keys:
  interval           time between rows (default 1s)
  header_every       reprint the header every N rows (0 = never)
  max_rows           stop after N rows (0 = run until interrupted)
  reprint_on_resize  reprint the header after a column grew
  preserve_state     keep widths and last values when measurements change
  empty_segments     keep or reject names like "a..b"
  max_bar            cap histogram bars (0 = built-in limit of 4096)
  sparkline_samples  history length of sparkline columns
  output.style       auto, plain or color

Examples:
  termstat init
  termstat init --interval 500ms --style plain
  termstat init --force --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Init(cmd.OutOrStdout(), mergeInitOptions(opts))
		},
	}

	cmd.Flags().StringVar(&opts.Interval, "interval", "", "time between rows (e.g., 1s, 500ms)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "header style: auto, plain or color")
	cmd.Flags().IntVar(&opts.HeaderEvery, "header-every", 0, "reprint the header every N rows")
	cmd.Flags().BoolVarP(&opts.Overwrite, "force", "f", false, "overwrite an existing config without asking")
	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false, "skip prompts and use flags or defaults")
	return cmd
}

// mergeInitOptions fills in non-interactive mode from the environment:
// TERMSTAT_NON_INTERACTIVE, CI, or a stdin that is not a terminal.
func mergeInitOptions(opts InitOptions) InitOptions {
	if os.Getenv("TERMSTAT_NON_INTERACTIVE") != "" || os.Getenv("CI") != "" {
		opts.NonInteractive = true
	}
	if !ui.IsTerminal(os.Stdin) {
		opts.NonInteractive = true
	}
	return opts
}

// Init writes a new .termstat.yaml configuration file.
func Init(out io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Interval != "" {
		cfg.Interval = opts.Interval
	}
	if opts.Style != "" {
		cfg.Output.Style = opts.Style
	}
	if opts.HeaderEvery > 0 {
		cfg.HeaderEvery = opts.HeaderEvery
	}

	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	fmt.Fprintln(out, ui.MutedStyle().Render("Try it: termstat demo"))
	return nil
}

// promptConfig asks for the most commonly changed keys.
func promptConfig(cfg *config.Config) error {
	headerEvery := strconv.Itoa(cfg.HeaderEvery)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Row interval").
				Description("Time between printed rows").
				Placeholder("1s").
				Value(&cfg.Interval).
				Validate(func(s string) error {
					_, err := ParseInterval(s)
					return err
				}),
			huh.NewInput().
				Title("Repeat header every N rows").
				Description("0 prints the header only when it changes").
				Value(&headerEvery).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(s); err != nil || n < 0 {
						return fmt.Errorf("enter a whole number, 0 or more")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Header style").
				Options(huh.NewOptions(ui.ValidStyles...)...).
				Value(&cfg.Output.Style),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Run with --non-interactive to use flags and defaults")
	}

	cfg.HeaderEvery, _ = strconv.Atoi(headerEvery)
	return nil
}
