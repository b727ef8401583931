package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"schedsim/internal/loader"
	"schedsim/internal/render"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		policyName string
		output     string
		quantum    int
		high       int
		low        int
		threshold  int
		gantt      bool
	)

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Simulate a process file under a scheduling policy",
		Long: `Simulate a process file under one scheduling policy, or all of them.

Examples:
  schedsim run processes.txt --policy fcfs
  schedsim run processes.txt --policy rr --quantum 3 --gantt
  schedsim run processes.txt --policy mlq --high-quantum 2 --low-quantum 4 --threshold 5
  schedsim run processes.txt --policy all --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			opts := a.cfg.Options()
			if cmd.Flags().Changed("quantum") {
				opts.TimeQuantum = quantum
			}
			if cmd.Flags().Changed("high-quantum") {
				opts.HighQuantum = high
			}
			if cmd.Flags().Changed("low-quantum") {
				opts.LowQuantum = low
			}
			if cmd.Flags().Changed("threshold") {
				opts.PriorityThreshold = threshold
			}

			var results []*schedulers.ScheduleResult
			if strings.EqualFold(policyName, "all") {
				results, err = schedulers.RunAll(cmd.Context(), batch, opts)
				if err != nil {
					return err
				}
			} else {
				policy, err := schedulers.ParsePolicy(policyName)
				if err != nil {
					return err
				}
				result, err := schedulers.Run(policy, batch, opts)
				if err != nil {
					return err
				}
				results = append(results, result)
			}

			a.log.Debug("simulation finished", slog.String("file", args[0]), slog.Int("runs", len(results)))
			return writeResults(cmd.OutOrStdout(), results, output, gantt)
		},
	}

	cmd.Flags().StringVarP(&policyName, "policy", "p", "fcfs", "fcfs, sjf, rr, priority, mlq or all")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "round-robin time quantum")
	cmd.Flags().IntVar(&high, "high-quantum", schedulers.DefaultHighQuantum, "multilevel queue high level quantum")
	cmd.Flags().IntVar(&low, "low-quantum", schedulers.DefaultLowQuantum, "multilevel queue low level quantum")
	cmd.Flags().IntVar(&threshold, "threshold", schedulers.DefaultPriorityThreshold, "multilevel queue priority threshold")
	cmd.Flags().BoolVarP(&gantt, "gantt", "g", false, "draw a Gantt chart (table output only)")
	return cmd
}

func writeResults(w io.Writer, results []*schedulers.ScheduleResult, output string, gantt bool) error {
	all := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		response, err := schedulers.GenerateResponse(result)
		if err != nil {
			return err
		}
		all = append(all, response)
	}

	var v any = all
	if len(all) == 1 {
		v = all[0]
	}

	switch output {
	case "json":
		return render.WriteJSON(w, v)
	case "yaml":
		return render.WriteYAML(w, v)
	case "table":
		for i, result := range results {
			render.WriteTitle(w, result.Policy.Title()+" Scheduling")
			if gantt {
				render.WriteGantt(w, result.Pids(), result.Timeline(), result.Cpu.TotalTime)
				_, _ = fmt.Fprintln(w)
			}
			render.WriteTable(w, all[i])
			_, _ = fmt.Fprintln(w)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
