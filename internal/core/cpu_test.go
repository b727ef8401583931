package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpu_ExecuteGrantsAtMostRemaining(t *testing.T) {
	cpu := NewCpu()
	p := NewProcess(1, 0, 5, 0)

	assert.Equal(t, 2, cpu.Execute(p, 2))
	require.NotNil(t, p.StartTime)
	assert.Equal(t, 0, *p.StartTime)
	assert.Nil(t, p.CompletionTime)
	assert.Equal(t, 3, p.RemainingTime)

	cpu.Idle(1)
	assert.Equal(t, 3, cpu.Execute(p, 10))
	assert.Equal(t, 0, *p.StartTime, "start time is only set on first dispatch")
	require.NotNil(t, p.CompletionTime)
	assert.Equal(t, 6, *p.CompletionTime)

	assert.Equal(t, 0, cpu.Execute(p, 2), "a finished process gets no time")
	assert.Equal(t, []Interval{{Start: 0, Duration: 2}, {Start: 3, Duration: 3}}, cpu.Intervals()[1])
}

func TestCpu_Metric(t *testing.T) {
	cpu := NewCpu()
	cpu.IdleUntil(4)
	cpu.IdleUntil(1)
	cpu.Execute(NewProcess(1, 4, 3, 0), 3)

	m := cpu.Metric()
	assert.Equal(t, CpuMetric{TotalTime: 7, UtilizationTime: 3, IdleTime: 4}, m)
}
