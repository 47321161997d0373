package requests

import "fcfs-scheduler/internal/core"

type Job struct {
	JobId       string `json:"job_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

func (j Job) ToCore() core.Job {
	return core.Job{ID: j.JobId, ArrivalTime: j.ArrivalTime, BurstTime: j.BurstTime}
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

func (r ScheduleRequests) ToCore() []core.Job {
	jobs := make([]core.Job, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		jobs = append(jobs, job.ToCore())
	}
	return jobs
}

type ModeRequest struct {
	Realistic *bool `json:"realistic"`
}
