package core

// CpuMetric summarises one simulated processor run, in simulation time units.
type CpuMetric struct {
	TotalTime       int `json:"total_time" yaml:"total_time"`
	UtilizationTime int `json:"utilization_time" yaml:"utilization_time"`
	IdleTime        int `json:"idle_time" yaml:"idle_time"`
}

// Cpu is a single simulated processor. It owns the simulation clock, hands
// out slices of processor time and keeps the execution trace.
type Cpu struct {
	clock           int
	utilizationTime int
	intervals       Timeline
}

func NewCpu() *Cpu {
	return &Cpu{intervals: make(Timeline)}
}

func (c *Cpu) Now() int { return c.clock }

// Idle advances the clock without running anything.
func (c *Cpu) Idle(ticks int) {
	if ticks > 0 {
		c.clock += ticks
	}
}

// IdleUntil jumps the clock forward to t if it is behind.
func (c *Cpu) IdleUntil(t int) {
	if c.clock < t {
		c.clock = t
	}
}

// Execute runs p for min(p.RemainingTime, slice) units starting at the
// current clock and returns the time granted. The first dispatch sets
// StartTime, the dispatch that drains RemainingTime sets CompletionTime.
func (c *Cpu) Execute(p *Process, slice int) int {
	granted := p.RemainingTime
	if slice < granted {
		granted = slice
	}
	if granted <= 0 {
		return 0
	}

	if p.RemainingTime == p.BurstTime && p.StartTime == nil {
		start := c.clock
		p.StartTime = &start
	}

	c.intervals[p.Pid] = append(c.intervals[p.Pid], Interval{Start: c.clock, Duration: granted})
	c.clock += granted
	c.utilizationTime += granted
	p.RemainingTime -= granted

	if p.RemainingTime == 0 {
		completion := c.clock
		p.CompletionTime = &completion
	}
	return granted
}

func (c *Cpu) Intervals() Timeline { return c.intervals }

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.utilizationTime,
		IdleTime:        c.clock - c.utilizationTime,
	}
}
