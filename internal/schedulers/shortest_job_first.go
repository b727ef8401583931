package schedulers

import "schedsim/internal/core"

// shortestJobFirst is non-preemptive. Among ready processes the shortest
// burst wins; equal bursts go to the one listed first in the batch.
func shortestJobFirst(cpu *core.Cpu, batch []*core.Process, _ Options) []*core.Process {
	return scheduleNonPreemptive(cpu, batch, func(p *core.Process) int {
		return p.BurstTime
	})
}
