package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/five82/fm/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fm: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "fm [left-dir [right-dir]]",
		Short: "Dual-panel terminal file manager",
		Long: `fm is a dual-panel terminal file manager.

Without arguments both panels open the directories saved on the last exit,
or the current directory. Use --printwd with a shell wrapper to cd into the
focused directory after quitting.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Dirs = args
			return app.Run(context.Background(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (default $XDG_CONFIG_HOME/fm/fm-config.toml)")
	cmd.Flags().StringVar(&opts.PrintWD, "printwd", "", "write the focused directory to this file on exit")
	cmd.Flags().StringVar(&opts.LogPath, "log-file", "", "log file path (default $XDG_CACHE_HOME/fm/fm.log)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.NoRestore, "no-restore", false, "do not restore the saved panel directories")
	return cmd
}
