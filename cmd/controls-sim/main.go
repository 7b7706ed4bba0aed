// Command controls-sim replays a pin script against a simulated board
// running one of the panel layouts and logs every control change.
//
// Script lines (# starts a comment):
//
//	begin                        initialise controls (implicit at the first poll or run)
//	set <pin> high|low           drive a digital input
//	analog <pin> <value>         drive an analogue input
//	mux-set <signal> <ch> high|low
//	mux-analog <signal> <ch> <value>
//	wait <ms>                    advance the clock
//	poll                         read every control once
//	run <ms>                     advance and poll every 10 ms for ms
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"controls-go/services/panel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	board  string
	layout string
	level  string
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "controls-sim",
		Short:        "Replay pin scripts against a simulated control panel",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.board, "board", "b", "pico", "embedded layout name")
	root.PersistentFlags().StringVarP(&opts.layout, "layout", "l", "", "YAML layout file (overrides --board)")
	root.PersistentFlags().StringVar(&opts.level, "log-level", "info", "debug, info, warn or error")

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script file, or stdin when absent or -",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), opts.level)

			cfg, err := loadLayout(opts.board, opts.layout)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			steps, err := parseScript(in)
			if err != nil {
				return err
			}

			r, err := newRunner(cfg, log)
			if err != nil {
				return err
			}
			return r.runAll(steps)
		},
	}

	boardsCmd := &cobra.Command{
		Use:   "boards",
		Short: "List embedded layouts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, b := range panel.EmbeddedBoards() {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
		},
	}

	root.AddCommand(runCmd, boardsCmd)
	return root
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
