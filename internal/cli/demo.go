package cli

import (
	"context"
	"fmt"

	"github.com/rileyhilliard/termstat/internal/demo"
	"github.com/rileyhilliard/termstat/internal/metrics"
	"github.com/spf13/cobra"
)

const defaultDemo = "simple"

func newDemoCmd() *cobra.Command {
	var (
		flags DisplayFlags
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Print a live table from a built-in producer",
		Long: `Run one of the built-in measurement producers and print its table.

Demos:
  simple       two grouped counters and an ungrouped constant
  description  absolute, per-second difference and histogram columns
  nested       a host-style tree with rates, gauges and a sparkline

Examples:
  termstat demo
  termstat demo description --interval 500ms
  termstat demo nested --tui
  termstat demo --list`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return listDemos(cmd)
			}
			name := defaultDemo
			if len(args) > 0 {
				name = args[0]
			}
			return demoCommand(cmd, name, &flags)
		},
	}

	AddDisplayFlags(cmd, &flags)
	cmd.Flags().BoolVar(&list, "list", false, "list the available demos")
	return cmd
}

func listDemos(cmd *cobra.Command) error {
	for _, name := range demo.Names() {
		p, err := demo.Lookup(name)
		if err != nil {
			return err
		}
		cmd.Printf("%-12s %s\n", p.Name, p.Description)
	}
	return nil
}

func demoCommand(cmd *cobra.Command, name string, flags *DisplayFlags) error {
	p, err := demo.Lookup(name)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := ApplyDisplayFlags(cmd, flags, cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reg := metrics.NewRegistry(getLogger())
	register, err := newRegister(out, reg, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	getLogger().Debug("starting demo %q every %s", name, cfg.IntervalDuration())
	done := demo.Start(ctx, p, reg, cfg.IntervalDuration())

	err = display(ctx, out, register, flags.TUI)
	cancel()
	<-done
	if err != nil {
		return fmt.Errorf("demo %s: %w", name, err)
	}
	return nil
}
