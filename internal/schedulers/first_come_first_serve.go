package schedulers

import (
	"sort"

	"fcfs-scheduler/internal/core"
	"fcfs-scheduler/internal/util"
)

// ScheduleFirstComeFirstServe runs the jobs non-preemptively in arrival order.
// Jobs arriving at the same tick run in the order they were passed in. The
// input slice is left untouched; when any job is invalid nothing is scheduled.
func ScheduleFirstComeFirstServe(jobs []core.Job) (core.Schedule, error) {
	if len(jobs) == 0 {
		return core.Schedule{}, &core.EmptyBatchError{}
	}
	for _, job := range jobs {
		if err := job.Validate(); err != nil {
			return core.Schedule{}, err
		}
	}

	// sort positions, not jobs, so results can be written back in input order
	order := make([]int, len(jobs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return jobs[order[i]].ArrivalTime < jobs[order[j]].ArrivalTime
	})

	scheduled := make([]core.ScheduledJob, len(jobs))
	timeline := make([]core.Slice, 0, len(jobs))
	var metric core.CpuMetric

	clock := 0
	for _, idx := range order {
		job := jobs[idx]

		// cpu stays idle until the job shows up
		if clock < job.ArrivalTime {
			timeline = append(timeline, core.Slice{Start: clock, End: job.ArrivalTime, Idle: true})
			metric.IdleTime += job.ArrivalTime - clock
			clock = job.ArrivalTime
		}

		startTime := clock
		endTime := startTime + job.BurstTime
		turnaroundTime := endTime - job.ArrivalTime

		scheduled[idx] = core.ScheduledJob{
			Job:            job,
			StartTime:      startTime,
			EndTime:        endTime,
			TurnaroundTime: turnaroundTime,
			WaitingTime:    turnaroundTime - job.BurstTime,
		}
		timeline = append(timeline, core.Slice{JobID: job.ID, Start: startTime, End: endTime})
		metric.BusyTime += job.BurstTime

		clock = endTime
	}
	metric.TotalTime = clock

	averageWaitingTime, averageTurnaroundTime, err := util.CalculateAverage(scheduled)
	if err != nil {
		return core.Schedule{}, err
	}

	return core.Schedule{
		Jobs:                  scheduled,
		Timeline:              timeline,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnaroundTime,
		Metric:                metric,
	}, nil
}
