package requests

import "schedsim/internal/core"

type Job struct {
	ProcessId   int `json:"pid"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

// ScheduleRequests is the body accepted by the schedule endpoints. Options
// left out fall back to the configured defaults.
type ScheduleRequests struct {
	Jobs              []Job `json:"processes"`
	TimeQuantum       *int  `json:"time_quantum,omitempty"`
	HighQuantum       *int  `json:"high_quantum,omitempty"`
	LowQuantum        *int  `json:"low_quantum,omitempty"`
	PriorityThreshold *int  `json:"priority_threshold,omitempty"`
}

func (r *ScheduleRequests) Processes() []*core.Process {
	processes := make([]*core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes
}
