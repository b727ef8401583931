package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"schedsim/config"
	"schedsim/internal/logging"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg *config.SchedulerConfig
	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	var (
		cfgFile  string
		logLevel string
		a        = &app{}
	)

	root := &cobra.Command{
		Use:   "schedsim",
		Short: "schedsim - CPU scheduling simulator",
		Long: `schedsim simulates how a single processor runs a batch of processes under
First-Come-First-Served, Shortest-Job-First, Round-Robin, Priority and
Multilevel-Queue scheduling, and reports turnaround and waiting times.

Process files hold one process per line: pid,arrival_time,burst_time,priority`,
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			a.cfg = cfg
			a.log = logging.NewWithWriter(cmd.ErrOrStderr(), "schedsim", cfg.LogLevel)
			slog.SetDefault(a.log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
