package schedulers

import (
	"container/heap"
	"sort"

	"schedsim/internal/core"
)

// byArrival returns the batch ordered by arrival time. Ties keep input order.
func byArrival(batch []*core.Process) []*core.Process {
	processes := make([]*core.Process, len(batch))
	copy(processes, batch)
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
	return processes
}

type readyEntry struct {
	process *core.Process
	key     int
	seq     int // position in the caller's batch
}

// readyQueue implements heap.Interface. The entry with the lowest key is
// popped first, ties go to the lowest seq.
type readyQueue []readyEntry

func (rq readyQueue) Len() int { return len(rq) }

func (rq readyQueue) Less(i, j int) bool {
	if rq[i].key != rq[j].key {
		return rq[i].key < rq[j].key
	}
	return rq[i].seq < rq[j].seq
}

func (rq readyQueue) Swap(i, j int) {
	rq[i], rq[j] = rq[j], rq[i]
}

// Push is called by heap.Push, do not call directly.
func (rq *readyQueue) Push(x any) {
	*rq = append(*rq, x.(readyEntry))
}

// Pop is called by heap.Pop, do not call directly.
func (rq *readyQueue) Pop() any {
	old := *rq
	n := len(old)
	entry := old[n-1]
	old[n-1] = readyEntry{}
	*rq = old[:n-1]
	return entry
}

// scheduleNonPreemptive runs the ready process with the smallest key to
// completion, over and over. When nothing is ready the clock jumps to the
// next arrival, which yields the same schedule as idling one tick at a time.
func scheduleNonPreemptive(cpu *core.Cpu, batch []*core.Process, key func(*core.Process) int) []*core.Process {
	pending := make([]readyEntry, len(batch))
	for i, p := range batch {
		pending[i] = readyEntry{process: p, key: key(p), seq: i}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].process.ArrivalTime < pending[j].process.ArrivalTime
	})

	var (
		ready     = make(readyQueue, 0, len(pending))
		completed = make([]*core.Process, 0, len(batch))
		next      int
	)
	for len(completed) < len(batch) {
		for next < len(pending) && pending[next].process.ArrivalTime <= cpu.Now() {
			heap.Push(&ready, pending[next])
			next++
		}
		if ready.Len() == 0 {
			cpu.IdleUntil(pending[next].process.ArrivalTime)
			continue
		}

		entry := heap.Pop(&ready).(readyEntry)
		cpu.Execute(entry.process, entry.process.BurstTime)
		completed = append(completed, entry.process)
	}
	return completed
}

// drainRoundRobin serves queue in FIFO order with the given quantum until it
// is empty. A head that has not arrived yet goes back to the tail and the
// clock idles one tick. A process left unfinished by its slice is offered to
// preempted, which reports whether it stays in this queue.
func drainRoundRobin(cpu *core.Cpu, queue []*core.Process, quantum int, completed []*core.Process, preempted func(*core.Process) bool) []*core.Process {
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.ArrivalTime > cpu.Now() {
			queue = append(queue, p)
			cpu.Idle(1)
			continue
		}

		cpu.Execute(p, quantum)
		if p.RemainingTime == 0 {
			completed = append(completed, p)
			continue
		}
		if preempted(p) {
			queue = append(queue, p)
		}
	}
	return completed
}
