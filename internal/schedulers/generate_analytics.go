package schedulers

import (
	"fcfs-scheduler/internal/core"
	"fcfs-scheduler/internal/responses"
)

func GenerateResponse(schedule core.Schedule) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(schedule.Jobs))
	for _, job := range schedule.Jobs {
		details = append(details, generateProcessDetails(job))
	}

	gantt := make([]responses.GanttEntry, 0, len(schedule.Timeline))
	for _, slice := range schedule.Timeline {
		gantt = append(gantt, responses.GanttEntry{
			JobId: slice.JobID,
			Start: slice.Start,
			End:   slice.End,
			Idle:  slice.Idle,
		})
	}

	return responses.ScheduleResponse{
		TotalTime:             schedule.Metric.TotalTime,
		IdleTime:              schedule.Metric.IdleTime,
		AverageWaitingTime:    schedule.AverageWaitingTime,
		AverageTurnAroundTime: schedule.AverageTurnaroundTime,
		CpuUtilization:        schedule.Metric.Utilization(),
		CpuThroughput:         schedule.Metric.Throughput(len(schedule.Jobs)),
		Details:               details,
		Gantt:                 gantt,
	}
}

func generateProcessDetails(job core.ScheduledJob) responses.ProcessResponse {
	return responses.ProcessResponse{
		JobId:          job.ID,
		ArrivalTime:    job.ArrivalTime,
		BurstTime:      job.BurstTime,
		StartTime:      job.StartTime,
		EndTime:        job.EndTime,
		WaitingTime:    job.WaitingTime,
		TurnAroundTime: job.TurnaroundTime,
	}
}
