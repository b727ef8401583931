package schedulers

import (
	"fmt"

	"github.com/google/uuid"

	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// GenerateResponse turns a completed run into the per-process details and
// batch analytics handed to renderers and API clients.
func GenerateResponse(result *ScheduleResult) (responses.ScheduleResponse, error) {
	metrics, err := util.CalculateMetrics(result.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("%s: %w", result.Policy, err)
	}

	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		detail, err := generateProcessDetails(p)
		if err != nil {
			return responses.ScheduleResponse{}, fmt.Errorf("%s: %w", result.Policy, err)
		}
		details = append(details, detail)
	}

	var utilization, throughput float64
	if result.Cpu.TotalTime > 0 {
		utilization = float64(result.Cpu.UtilizationTime) / float64(result.Cpu.TotalTime)
		throughput = float64(len(result.Processes)) / float64(result.Cpu.TotalTime)
	}

	return responses.ScheduleResponse{
		RunId:                 uuid.NewString(),
		Policy:                string(result.Policy),
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    metrics.AverageWaitingTime,
		AverageResponseTime:   metrics.AverageResponseTime,
		AverageTurnAroundTime: metrics.AverageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               details,
		Intervals:             result.Intervals,
	}, nil
}

func generateProcessDetails(p *core.Process) (responses.ProcessResponse, error) {
	responseTime, err := util.ResponseTime(p)
	if err != nil {
		return responses.ProcessResponse{}, err
	}
	turnAroundTime, err := util.TurnAroundTime(p)
	if err != nil {
		return responses.ProcessResponse{}, err
	}

	return responses.ProcessResponse{
		ProcessId:      p.Pid,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		StartTime:      *p.StartTime,
		CompletionTime: *p.CompletionTime,
		ResponseTime:   responseTime,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - p.BurstTime,
	}, nil
}
