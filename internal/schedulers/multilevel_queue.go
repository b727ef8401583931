package schedulers

import "schedsim/internal/core"

// multilevelQueue runs two levels with strict priority between them. Records
// with priority below the threshold start in the high queue, which gets a
// single round-robin pass: whatever its slice leaves unfinished is demoted to
// the tail of the low queue with its remaining time. The low queue then runs
// round-robin to exhaustion on the clock the high phase left behind.
func multilevelQueue(cpu *core.Cpu, batch []*core.Process, opts Options) []*core.Process {
	var high, low []*core.Process
	for _, p := range byArrival(batch) {
		if p.Priority < opts.PriorityThreshold {
			high = append(high, p)
		} else {
			low = append(low, p)
		}
	}

	completed := make([]*core.Process, 0, len(batch))
	completed = drainRoundRobin(cpu, high, opts.HighQuantum, completed, func(p *core.Process) bool {
		low = append(low, p)
		return false
	})
	return drainRoundRobin(cpu, low, opts.LowQuantum, completed, func(*core.Process) bool {
		return true
	})
}
