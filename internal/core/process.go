package core

import (
	"errors"
	"fmt"
)

var ErrInvalidProcess = errors.New("invalid process")

// Process is one schedulable unit of work. Pid, ArrivalTime, BurstTime and
// Priority are fixed once created; the scheduling fields are filled in by a
// policy run and cleared by Reset.
type Process struct {
	Pid         int `json:"pid" yaml:"pid"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"` // lower value = higher priority

	RemainingTime  int  `json:"remaining_time" yaml:"remaining_time"`
	StartTime      *int `json:"start_time" yaml:"start_time"`
	CompletionTime *int `json:"completion_time" yaml:"completion_time"`
}

func NewProcess(pid, arrivalTime, burstTime, priority int) *Process {
	return &Process{
		Pid:           pid,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
	}
}

// Validate reports whether the process can be simulated at all.
func (p *Process) Validate() error {
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: pid %d: burst_time must be > 0, got %d", ErrInvalidProcess, p.Pid, p.BurstTime)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: pid %d: arrival_time must be >= 0, got %d", ErrInvalidProcess, p.Pid, p.ArrivalTime)
	}
	return nil
}

func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = nil
	p.CompletionTime = nil
}

func (p *Process) Started() bool   { return p.StartTime != nil }
func (p *Process) Completed() bool { return p.CompletionTime != nil }

// Clone returns a copy that shares no memory with p.
func (p *Process) Clone() *Process {
	c := *p
	if p.StartTime != nil {
		start := *p.StartTime
		c.StartTime = &start
	}
	if p.CompletionTime != nil {
		completion := *p.CompletionTime
		c.CompletionTime = &completion
	}
	return &c
}

// CloneBatch deep-copies a batch so a policy run can mutate it freely.
func CloneBatch(batch []*Process) []*Process {
	clones := make([]*Process, len(batch))
	for i, p := range batch {
		clones[i] = p.Clone()
	}
	return clones
}

func ResetBatch(batch []*Process) {
	for _, p := range batch {
		p.Reset()
	}
}

func ValidateBatch(batch []*Process) error {
	seen := make(map[int]struct{}, len(batch))
	for _, p := range batch {
		if p == nil {
			return fmt.Errorf("%w: nil process in batch", ErrInvalidProcess)
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.Pid]; ok {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidProcess, p.Pid)
		}
		seen[p.Pid] = struct{}{}
	}
	return nil
}

// Interval is one contiguous slice of processor time granted to a process.
type Interval struct {
	Start    int `json:"start" yaml:"start"`
	Duration int `json:"duration" yaml:"duration"`
}

func (i Interval) End() int { return i.Start + i.Duration }

// Timeline maps a pid to its execution intervals in dispatch order.
type Timeline map[int][]Interval

// Granted returns the total processor time recorded for pid.
func (t Timeline) Granted(pid int) int {
	total := 0
	for _, interval := range t[pid] {
		total += interval.Duration
	}
	return total
}
