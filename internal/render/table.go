// Package render draws schedules for terminals: a timing table, a Gantt
// chart and plain JSON / YAML dumps.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/core"
	"schedsim/internal/responses"
)

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteTable renders the per-process timing of a schedule with the batch
// averages in the footer.
func WriteTable(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Exit", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Utilization\n%.2f%%", response.CpuUtilization*100),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)})
	table.Render()
}

// WriteProcesses lists a loaded batch before any policy ran.
func WriteProcesses(w io.Writer, processes []*core.Process) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival Time", "Burst Time", "Priority"})
	for _, p := range processes {
		table.Append([]string{
			fmt.Sprint(p.Pid),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
		})
	}
	table.Render()
}
