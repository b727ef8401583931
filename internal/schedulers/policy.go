package schedulers

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"schedsim/internal/core"
)

type Policy string

const (
	FirstComeFirstServe Policy = "fcfs"
	ShortestJobFirst    Policy = "sjf"
	RoundRobin          Policy = "rr"
	PriorityScheduling  Policy = "priority"
	MultilevelQueue     Policy = "mlq"
)

// Policies lists every supported policy in presentation order.
var Policies = []Policy{FirstComeFirstServe, ShortestJobFirst, RoundRobin, PriorityScheduling, MultilevelQueue}

var policyAliases = map[string]Policy{
	"fcfs":                    FirstComeFirstServe,
	"first-come-first-serve":  FirstComeFirstServe,
	"first-come-first-served": FirstComeFirstServe,
	"sjf":                     ShortestJobFirst,
	"shortest-job-first":      ShortestJobFirst,
	"rr":                      RoundRobin,
	"round-robin":             RoundRobin,
	"priority":                PriorityScheduling,
	"mlq":                     MultilevelQueue,
	"multilevel-queue":        MultilevelQueue,
}

func ParsePolicy(name string) (Policy, error) {
	p, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown scheduling policy %q", name)
	}
	return p, nil
}

// Preemptive reports whether a running process can be suspended and resumed.
func (p Policy) Preemptive() bool {
	return p == RoundRobin || p == MultilevelQueue
}

func (p Policy) Title() string {
	switch p {
	case FirstComeFirstServe:
		return "First-Come-First-Served"
	case ShortestJobFirst:
		return "Shortest-Job-First"
	case RoundRobin:
		return "Round-Robin"
	case PriorityScheduling:
		return "Priority"
	case MultilevelQueue:
		return "Multilevel-Queue"
	default:
		return string(p)
	}
}

// ScheduleResult is a completed policy run.
type ScheduleResult struct {
	Policy    Policy
	Options   Options
	Processes []*core.Process
	// Intervals is only set for preemptive policies.
	Intervals core.Timeline
	Cpu       core.CpuMetric
}

// Timeline returns the execution intervals of every process. Non-preemptive
// results derive a single (start, burst) interval per process.
func (r *ScheduleResult) Timeline() core.Timeline {
	if r.Intervals != nil {
		return r.Intervals
	}
	timeline := make(core.Timeline, len(r.Processes))
	for _, p := range r.Processes {
		if p.StartTime == nil {
			continue
		}
		timeline[p.Pid] = []core.Interval{{Start: *p.StartTime, Duration: p.BurstTime}}
	}
	return timeline
}

// Pids returns the pids of the result in ascending order.
func (r *ScheduleResult) Pids() []int {
	pids := make([]int, 0, len(r.Processes))
	for _, p := range r.Processes {
		pids = append(pids, p.Pid)
	}
	sort.Ints(pids)
	return pids
}

type algorithm func(cpu *core.Cpu, batch []*core.Process, opts Options) []*core.Process

var algorithms = map[Policy]algorithm{
	FirstComeFirstServe: firstComeFirstServe,
	ShortestJobFirst:    shortestJobFirst,
	RoundRobin:          roundRobin,
	PriorityScheduling:  priorityScheduling,
	MultilevelQueue:     multilevelQueue,
}

// Run simulates batch under policy. The batch itself is never mutated: the
// run works on a reset deep copy. Options and records are validated first.
func Run(policy Policy, batch []*core.Process, opts Options) (*ScheduleResult, error) {
	run, ok := algorithms[policy]
	if !ok {
		return nil, fmt.Errorf("unknown scheduling policy %q", policy)
	}
	if err := opts.validate(policy); err != nil {
		return nil, err
	}
	if err := core.ValidateBatch(batch); err != nil {
		return nil, fmt.Errorf("%s: %w", policy, err)
	}

	working := core.CloneBatch(batch)
	core.ResetBatch(working)

	slog.Debug("running scheduling policy", slog.String("policy", string(policy)), slog.Int("processes", len(working)))
	cpu := core.NewCpu()
	completed := run(cpu, working, opts)

	result := &ScheduleResult{
		Policy:    policy,
		Options:   opts,
		Processes: completed,
		Cpu:       cpu.Metric(),
	}
	if policy.Preemptive() {
		result.Intervals = cpu.Intervals()
		for _, p := range completed {
			if _, ok := result.Intervals[p.Pid]; !ok {
				result.Intervals[p.Pid] = []core.Interval{}
			}
		}
	}
	slog.Debug("scheduling policy finished", slog.String("policy", string(policy)), slog.Int("total_time", result.Cpu.TotalTime))
	return result, nil
}

func ScheduleFirstComeFirstServe(batch []*core.Process) (*ScheduleResult, error) {
	return Run(FirstComeFirstServe, batch, Options{})
}

func ScheduleShortestJobFirst(batch []*core.Process) (*ScheduleResult, error) {
	return Run(ShortestJobFirst, batch, Options{})
}

func ScheduleRoundRobin(batch []*core.Process, timeQuantum int) (*ScheduleResult, error) {
	return Run(RoundRobin, batch, Options{TimeQuantum: timeQuantum})
}

func SchedulePriority(batch []*core.Process) (*ScheduleResult, error) {
	return Run(PriorityScheduling, batch, Options{})
}

func ScheduleMultilevelQueue(batch []*core.Process, highQuantum, lowQuantum, priorityThreshold int) (*ScheduleResult, error) {
	return Run(MultilevelQueue, batch, Options{
		HighQuantum:       highQuantum,
		LowQuantum:        lowQuantum,
		PriorityThreshold: priorityThreshold,
	})
}
