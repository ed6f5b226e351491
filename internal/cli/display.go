package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/termstat/internal/config"
	"github.com/rileyhilliard/termstat/internal/exporter"
	"github.com/rileyhilliard/termstat/internal/logger"
	"github.com/rileyhilliard/termstat/internal/table"
	"github.com/rileyhilliard/termstat/internal/ui"
)

func getLogger() logger.Logger {
	return logger.Default()
}

// exporterOptions maps a validated config onto register options.
func exporterOptions(cfg *config.Config, isTTY bool) (exporter.Options, error) {
	segments, err := table.ParseSegmentPolicy(cfg.EmptySegments)
	if err != nil {
		return exporter.Options{}, err
	}
	style, err := ui.ParseStyle(cfg.Output.Style)
	if err != nil {
		return exporter.Options{}, err
	}

	return exporter.Options{
		Interval:         cfg.IntervalDuration(),
		HeaderEvery:      cfg.HeaderEvery,
		MaxRows:          cfg.MaxRows,
		ReprintOnResize:  cfg.ReprintOnResize,
		PreserveState:    cfg.PreserveState,
		Segments:         segments,
		MaxBar:           cfg.MaxBar,
		SparklineSamples: cfg.SparklineSamples,
		Styler:           ui.HeaderStyler(style, isTTY),
		Logger:           getLogger(),
	}, nil
}

// newRegister builds a register for source whose header styling depends on
// whether out is a terminal.
func newRegister(out io.Writer, source exporter.Source, cfg *config.Config) (*exporter.Register, error) {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = ui.IsTerminal(f)
	}

	opts, err := exporterOptions(cfg, isTTY)
	if err != nil {
		return nil, err
	}
	return exporter.New(source, opts), nil
}

// display prints the register's table on out until ctx is cancelled or the
// row limit is reached. With tui set it takes over the terminal instead.
func display(ctx context.Context, out io.Writer, register *exporter.Register, tui bool) error {
	if !tui {
		return register.Run(ctx, out)
	}

	p := tea.NewProgram(exporter.NewWatch(register),
		tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return err
	}
	if w, ok := final.(exporter.Watch); ok {
		return w.Err()
	}
	return nil
}
