package util

import (
	"fmt"

	"schedsim/internal/core"
)

// Metrics holds the batch averages of a completed schedule.
type Metrics struct {
	AverageTurnAroundTime float64 `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	AverageWaitingTime    float64 `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64 `json:"average_response_time" yaml:"average_response_time"`
}

// PreconditionError means a record reached the metrics calculator before a
// policy run completed it. It points at a sequencing bug in the caller.
type PreconditionError struct {
	Pid   int
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violated: pid %d has no %s", e.Pid, e.Field)
}

func TurnAroundTime(p *core.Process) (int, error) {
	if p.CompletionTime == nil {
		return 0, &PreconditionError{Pid: p.Pid, Field: "completion_time"}
	}
	return *p.CompletionTime - p.ArrivalTime, nil
}

func WaitingTime(p *core.Process) (int, error) {
	turnAround, err := TurnAroundTime(p)
	if err != nil {
		return 0, err
	}
	return turnAround - p.BurstTime, nil
}

// ResponseTime is the delay between arrival and first dispatch.
func ResponseTime(p *core.Process) (int, error) {
	if p.StartTime == nil {
		return 0, &PreconditionError{Pid: p.Pid, Field: "start_time"}
	}
	return *p.StartTime - p.ArrivalTime, nil
}

// CalculateMetrics averages turnaround, waiting and response time over a
// completed batch. An empty batch yields zero metrics.
func CalculateMetrics(processes []*core.Process) (Metrics, error) {
	var turnAroundTimeSum, waitingTimeSum, responseTimeSum int

	for _, process := range processes {
		responseTime, err := ResponseTime(process)
		if err != nil {
			return Metrics{}, err
		}
		turnAroundTime, err := TurnAroundTime(process)
		if err != nil {
			return Metrics{}, err
		}
		turnAroundTimeSum += turnAroundTime
		waitingTimeSum += turnAroundTime - process.BurstTime
		responseTimeSum += responseTime
	}

	if len(processes) == 0 {
		return Metrics{}, nil
	}
	processCount := float64(len(processes))
	return Metrics{
		AverageTurnAroundTime: float64(turnAroundTimeSum) / processCount,
		AverageWaitingTime:    float64(waitingTimeSum) / processCount,
		AverageResponseTime:   float64(responseTimeSum) / processCount,
	}, nil
}
