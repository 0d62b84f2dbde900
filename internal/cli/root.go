// Package cli implements the boolgrid command tree.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolgrid/internal/config"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
}

// NewRootCommand creates the root command with its subcommands attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &rootOpts{}
	rootCmd := &cobra.Command{
		Use:   "boolgrid",
		Short: "Render boolean grids as block glyphs",
		Long: `boolgrid reads a grid document (YAML or JSON) and prints it either as
rows of ⬛/⬜ glyphs or as a bracketed debug listing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(cmd, opts.debugModeOn)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is $HOME/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug logging")

	rootCmd.AddCommand(newRenderCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// initLogger sends logrus output to the command's stderr.
func initLogger(cmd *cobra.Command, debug bool) {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
