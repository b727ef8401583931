package schedulers

import "schedsim/internal/core"

// priorityScheduling is non-preemptive. The lowest priority value wins, ties
// go to the process listed first in the batch.
func priorityScheduling(cpu *core.Cpu, batch []*core.Process, _ Options) []*core.Process {
	return scheduleNonPreemptive(cpu, batch, func(p *core.Process) int {
		return p.Priority
	})
}
