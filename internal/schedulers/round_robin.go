package schedulers

import "schedsim/internal/core"

func roundRobin(cpu *core.Cpu, batch []*core.Process, opts Options) []*core.Process {
	completed := make([]*core.Process, 0, len(batch))
	return drainRoundRobin(cpu, byArrival(batch), opts.TimeQuantum, completed, func(*core.Process) bool {
		return true
	})
}
