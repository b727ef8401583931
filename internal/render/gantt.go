package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"schedsim/internal/core"
)

var (
	palette = []lipgloss.Color{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"}
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

const (
	busyCell = "█"
	idleCell = "·"
)

// WriteGantt draws one row per pid in ascending order, one cell per time
// unit from 0 to end. Cells where the process runs are filled.
func WriteGantt(w io.Writer, pids []int, timeline core.Timeline, end int) {
	labelWidth := 0
	for _, pid := range pids {
		if n := len(fmt.Sprintf("P%d", pid)); n > labelWidth {
			labelWidth = n
		}
	}

	for i, pid := range pids {
		style := lipgloss.NewStyle().Foreground(palette[i%len(palette)])
		cells := make([]string, end)
		for t := range cells {
			cells[t] = axisStyle.Render(idleCell)
		}
		for _, interval := range timeline[pid] {
			for t := interval.Start; t < interval.End() && t < end; t++ {
				cells[t] = style.Render(busyCell)
			}
		}
		label := fmt.Sprintf("%-*s", labelWidth, fmt.Sprintf("P%d", pid))
		_, _ = fmt.Fprintf(w, "%s |%s|\n", label, strings.Join(cells, ""))
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n", strings.Repeat(" ", labelWidth), axisStyle.Render(axis(end)))
}

// axis marks every fifth time unit.
func axis(end int) string {
	var sb strings.Builder
	for t := 0; t <= end; {
		if t%5 == 0 {
			mark := fmt.Sprint(t)
			sb.WriteString(mark)
			t += len(mark)
			continue
		}
		sb.WriteByte(' ')
		t++
	}
	return sb.String()
}
