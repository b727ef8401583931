package schedulers

import "schedsim/internal/core"

func firstComeFirstServe(cpu *core.Cpu, batch []*core.Process, _ Options) []*core.Process {
	processes := byArrival(batch)
	for _, p := range processes {
		cpu.IdleUntil(p.ArrivalTime)
		cpu.Execute(p, p.BurstTime)
	}
	return processes
}
