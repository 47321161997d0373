package core

import "sort"

// Slice is one bar of the gantt timeline. Idle slices carry no job id.
type Slice struct {
	JobID string
	Start int
	End   int
	Idle  bool
}

func (s Slice) Duration() int { return s.End - s.Start }

type CpuMetric struct {
	TotalTime int
	BusyTime  int
	IdleTime  int
}

// Utilization is the busy share of the total time, 0 for an empty timeline.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.BusyTime) / float64(m.TotalTime)
}

// Throughput is completed jobs per tick.
func (m CpuMetric) Throughput(jobCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(jobCount) / float64(m.TotalTime)
}

// Schedule is the outcome of one scheduling run. Jobs keep the caller's
// order, Timeline follows execution order.
type Schedule struct {
	Jobs                  []ScheduledJob
	Timeline              []Slice
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	Metric                CpuMetric
}

// ExecutionOrder returns the scheduled jobs in the order the cpu ran them.
func (s Schedule) ExecutionOrder() []ScheduledJob {
	ordered := make([]ScheduledJob, len(s.Jobs))
	copy(ordered, s.Jobs)
	// bursts are positive, so no two jobs share a start time
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].StartTime < ordered[j].StartTime
	})
	return ordered
}
