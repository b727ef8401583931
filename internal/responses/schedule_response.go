package responses

import "schedsim/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"pid" yaml:"pid"`
	ArrivalTime    int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int `json:"burst_time" yaml:"burst_time"`
	Priority       int `json:"priority" yaml:"priority"`
	StartTime      int `json:"start_time" yaml:"start_time"`
	CompletionTime int `json:"completion_time" yaml:"completion_time"`
	ResponseTime   int `json:"response_time" yaml:"response_time"`
	TurnAroundTime int `json:"turn_around_time" yaml:"turn_around_time"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id" yaml:"run_id"`
	Policy                string            `json:"policy" yaml:"policy"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
	Intervals             core.Timeline     `json:"intervals,omitempty" yaml:"intervals,omitempty"`
}
