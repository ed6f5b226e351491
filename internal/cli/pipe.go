package cli

import (
	"context"
	"io"
	"os/exec"

	"github.com/rileyhilliard/termstat/internal/errors"
	"github.com/rileyhilliard/termstat/internal/feed"
	"github.com/rileyhilliard/termstat/internal/metrics"
	"github.com/spf13/cobra"
)

func newPipeCmd() *cobra.Command {
	var flags DisplayFlags

	cmd := &cobra.Command{
		Use:   "pipe [-- command [args...]]",
		Short: "Print a live table from measurements read on stdin",
		Long: `Read measurement lines and print them as a live table.

Each line is "<name> <value> [unit=<unit>] [<key>=<value> ...]":

  net.rx 1024 unit=bytes_per_second
  queue.depth 12 view=histogram
  requests +1
  cpu.load 0.42 view=sparkline

Whole numbers set counters, "+N" increments them and anything else sets a
gauge. Lines starting with "#" are ignored; malformed lines are skipped with
a warning. When input ends, a final row is printed and termstat exits.

With a command after "--", its stdout is read instead of stdin.

Examples:
  ./emit-metrics.sh | termstat pipe
  termstat pipe --interval 2s -- ./emit-metrics.sh --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeCommand(cmd, args, &flags)
		},
	}

	AddDisplayFlags(cmd, &flags)
	return cmd
}

func pipeCommand(cmd *cobra.Command, args []string, flags *DisplayFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := ApplyDisplayFlags(cmd, flags, cfg); err != nil {
		return err
	}

	log := getLogger()
	out := cmd.OutOrStdout()
	reg := metrics.NewRegistry(log)
	register, err := newRegister(out, reg, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	in := cmd.InOrStdin()
	var proc *exec.Cmd
	if len(args) > 0 {
		proc, in, err = startProducer(ctx, cmd, args)
		if err != nil {
			return err
		}
	}

	// The table runs until the feed ends, the row limit is hit or the
	// user interrupts.
	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()
	feedDone := make(chan error, 1)
	go func() {
		feedDone <- feed.NewReader(reg, log).Read(ctx, in)
		stopRun()
	}()

	displayErr := display(runCtx, out, register, flags.TUI)

	var feedErr error
	select {
	case feedErr = <-feedDone:
		if displayErr == nil && ctx.Err() == nil && !flags.TUI && cfg.MaxRows == 0 {
			displayErr = register.Flush(out)
		}
	default:
		cancel()
		feedErr = <-feedDone
	}

	if proc != nil {
		cancel()
		if err := proc.Wait(); err != nil && cmd.Context().Err() == nil && feedErr == nil {
			log.Warn("%s exited: %v", args[0], err)
		}
	}

	if displayErr != nil {
		return displayErr
	}
	return feedErr
}

// startProducer runs args with its stdout connected to the returned reader.
// Its stderr goes to the command's stderr.
func startProducer(ctx context.Context, cmd *cobra.Command, args []string) (*exec.Cmd, io.Reader, error) {
	proc := exec.CommandContext(ctx, args[0], args[1:]...)
	proc.Stderr = cmd.ErrOrStderr()
	stdout, err := proc.StdoutPipe()
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrFeed,
			"Failed to connect to "+args[0],
			"Check that the command can be started from this shell.")
	}
	if err := proc.Start(); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrFeed,
			"Failed to start "+args[0],
			"Check that the command exists and is executable.")
	}
	getLogger().Debug("reading measurements from %s (pid %d)", args[0], proc.Process.Pid)
	return proc, stdout, nil
}
