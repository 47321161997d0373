package schedulers_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcfs-scheduler/internal/core"
	"fcfs-scheduler/internal/schedulers"
)

func jobsOf(jobs ...core.Job) []core.Job { return jobs }

func TestScheduleFirstComeFirstServe(t *testing.T) {
	t.Run("jobs queue up behind each other", func(t *testing.T) {
		jobs := jobsOf(
			core.Job{ID: "P1", ArrivalTime: 0, BurstTime: 5},
			core.Job{ID: "P2", ArrivalTime: 1, BurstTime: 3},
			core.Job{ID: "P3", ArrivalTime: 2, BurstTime: 8},
		)

		schedule, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)

		expected := []core.ScheduledJob{
			{Job: jobs[0], StartTime: 0, EndTime: 5, WaitingTime: 0, TurnaroundTime: 5},
			{Job: jobs[1], StartTime: 5, EndTime: 8, WaitingTime: 4, TurnaroundTime: 7},
			{Job: jobs[2], StartTime: 8, EndTime: 16, WaitingTime: 6, TurnaroundTime: 14},
		}
		assert.Equal(t, expected, schedule.Jobs)
		assert.InDelta(t, 10.0/3, schedule.AverageWaitingTime, 1e-9)
		assert.InDelta(t, 26.0/3, schedule.AverageTurnaroundTime, 1e-9)
		assert.Equal(t, core.CpuMetric{TotalTime: 16, BusyTime: 16, IdleTime: 0}, schedule.Metric)
	})

	t.Run("cpu idles until the next arrival", func(t *testing.T) {
		jobs := jobsOf(
			core.Job{ID: "A", ArrivalTime: 0, BurstTime: 2},
			core.Job{ID: "B", ArrivalTime: 10, BurstTime: 3},
		)

		schedule, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)

		b := schedule.Jobs[1]
		assert.Equal(t, 10, b.StartTime)
		assert.Equal(t, 13, b.EndTime)
		assert.Equal(t, 0, b.WaitingTime)
		assert.Equal(t, 3, b.TurnaroundTime)

		assert.Equal(t, []core.Slice{
			{JobID: "A", Start: 0, End: 2},
			{Start: 2, End: 10, Idle: true},
			{JobID: "B", Start: 10, End: 13},
		}, schedule.Timeline)
		assert.Equal(t, core.CpuMetric{TotalTime: 13, BusyTime: 5, IdleTime: 8}, schedule.Metric)
	})

	t.Run("leading idle gap when nothing arrives at zero", func(t *testing.T) {
		schedule, err := schedulers.ScheduleFirstComeFirstServe(jobsOf(core.Job{ID: "X", ArrivalTime: 3, BurstTime: 1}))
		require.NoError(t, err)
		assert.Equal(t, []core.Slice{
			{Start: 0, End: 3, Idle: true},
			{JobID: "X", Start: 3, End: 4},
		}, schedule.Timeline)
	})

	t.Run("spread out jobs never wait", func(t *testing.T) {
		jobs := jobsOf(
			core.Job{ID: "J1", ArrivalTime: 0, BurstTime: 2},
			core.Job{ID: "J2", ArrivalTime: 5, BurstTime: 1},
			core.Job{ID: "J3", ArrivalTime: 9, BurstTime: 4},
		)

		schedule, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)
		for _, job := range schedule.Jobs {
			assert.Equal(t, job.ArrivalTime, job.StartTime, job.ID)
			assert.Zero(t, job.WaitingTime, job.ID)
		}
		assert.Zero(t, schedule.AverageWaitingTime)
	})

	t.Run("simultaneous arrivals run in input order", func(t *testing.T) {
		jobs := jobsOf(
			core.Job{ID: "late", ArrivalTime: 4, BurstTime: 1},
			core.Job{ID: "z", ArrivalTime: 0, BurstTime: 2},
			core.Job{ID: "a", ArrivalTime: 0, BurstTime: 2},
			core.Job{ID: "m", ArrivalTime: 0, BurstTime: 2},
		)

		schedule, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)

		ids := make([]string, 0, len(jobs))
		for _, job := range schedule.ExecutionOrder() {
			ids = append(ids, job.ID)
		}
		assert.Equal(t, []string{"z", "a", "m", "late"}, ids)
		assert.Equal(t, 6, schedule.Jobs[0].StartTime)
	})

	t.Run("results follow input order", func(t *testing.T) {
		jobs := jobsOf(
			core.Job{ID: "P3", ArrivalTime: 2, BurstTime: 8},
			core.Job{ID: "P1", ArrivalTime: 0, BurstTime: 5},
			core.Job{ID: "P2", ArrivalTime: 1, BurstTime: 3},
		)

		schedule, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)
		require.Len(t, schedule.Jobs, 3)
		for i, job := range schedule.Jobs {
			assert.Equal(t, jobs[i], job.Job)
		}
		assert.Equal(t, 8, schedule.Jobs[0].StartTime)
	})
}

func TestScheduleFirstComeFirstServe_Errors(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		_, err := schedulers.ScheduleFirstComeFirstServe(nil)
		var empty *core.EmptyBatchError
		assert.True(t, errors.As(err, &empty))
		assert.True(t, errors.Is(err, core.ErrEmptyBatch))
	})

	tests := []struct {
		name   string
		jobs   []core.Job
		wantID string
	}{
		{
			name:   "zero burst",
			jobs:   jobsOf(core.Job{ID: "ok", BurstTime: 1}, core.Job{ID: "bad", BurstTime: 0}),
			wantID: "bad",
		},
		{
			name:   "negative burst",
			jobs:   jobsOf(core.Job{ID: "neg", BurstTime: -2}),
			wantID: "neg",
		},
		{
			name:   "negative arrival",
			jobs:   jobsOf(core.Job{ID: "early", ArrivalTime: -1, BurstTime: 3}),
			wantID: "early",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]core.Job(nil), tt.jobs...)

			schedule, err := schedulers.ScheduleFirstComeFirstServe(tt.jobs)

			var invalid *core.InvalidJobError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.wantID, invalid.JobID)
			assert.Empty(t, schedule.Jobs)
			assert.Equal(t, before, tt.jobs)
		})
	}
}

func randomBatch(r *rand.Rand, n int, distinctArrivals bool) []core.Job {
	jobs := make([]core.Job, 0, n)
	used := map[int]bool{}
	for i := 0; i < n; i++ {
		arrival := r.Intn(50)
		for distinctArrivals && used[arrival] {
			arrival++
		}
		used[arrival] = true
		jobs = append(jobs, core.Job{
			ID:          string(rune('A' + i)),
			ArrivalTime: arrival,
			BurstTime:   1 + r.Intn(10),
		})
	}
	return jobs
}

func byID(schedule core.Schedule) map[string]core.ScheduledJob {
	m := make(map[string]core.ScheduledJob, len(schedule.Jobs))
	for _, job := range schedule.Jobs {
		m[job.ID] = job
	}
	return m
}

func TestScheduleFirstComeFirstServe_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		jobs := randomBatch(r, 1+r.Intn(20), false)
		before := append([]core.Job(nil), jobs...)

		schedule, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)
		assert.Equal(t, before, jobs, "input must not be modified")

		waitingSum, turnaroundSum := 0, 0
		for _, job := range schedule.Jobs {
			assert.GreaterOrEqual(t, job.StartTime, job.ArrivalTime)
			assert.Equal(t, job.StartTime+job.BurstTime, job.EndTime)
			assert.Equal(t, job.EndTime-job.ArrivalTime, job.TurnaroundTime)
			assert.Equal(t, job.TurnaroundTime-job.BurstTime, job.WaitingTime)
			assert.Equal(t, job.StartTime-job.ArrivalTime, job.WaitingTime)
			waitingSum += job.WaitingTime
			turnaroundSum += job.TurnaroundTime
		}
		n := float64(len(jobs))
		assert.InDelta(t, float64(waitingSum)/n, schedule.AverageWaitingTime, 1e-9)
		assert.InDelta(t, float64(turnaroundSum)/n, schedule.AverageTurnaroundTime, 1e-9)

		// timeline covers [0, total) without holes
		clock := 0
		for _, slice := range schedule.Timeline {
			assert.Equal(t, clock, slice.Start)
			assert.Greater(t, slice.End, slice.Start)
			clock = slice.End
		}
		assert.Equal(t, schedule.Metric.TotalTime, clock)
		assert.Equal(t, schedule.Metric.TotalTime, schedule.Metric.BusyTime+schedule.Metric.IdleTime)

		again, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)
		assert.Equal(t, schedule, again, "rescheduling must be idempotent")
	}
}

func TestScheduleFirstComeFirstServe_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for round := 0; round < 30; round++ {
		jobs := randomBatch(r, 2+r.Intn(15), true)

		expected, err := schedulers.ScheduleFirstComeFirstServe(jobs)
		require.NoError(t, err)

		shuffled := append([]core.Job(nil), jobs...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		actual, err := schedulers.ScheduleFirstComeFirstServe(shuffled)
		require.NoError(t, err)

		assert.Equal(t, byID(expected), byID(actual))
		assert.Equal(t, expected.AverageWaitingTime, actual.AverageWaitingTime)
		assert.Equal(t, expected.AverageTurnaroundTime, actual.AverageTurnaroundTime)
		assert.Equal(t, expected.Timeline, actual.Timeline)
	}
}
