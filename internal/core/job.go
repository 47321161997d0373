package core

// Job is one unit of work waiting for the cpu.
type Job struct {
	ID          string
	ArrivalTime int
	BurstTime   int
}

// NewJob builds a job and rejects a non-positive burst or a negative arrival.
func NewJob(id string, arrivalTime, burstTime int) (Job, error) {
	job := Job{ID: id, ArrivalTime: arrivalTime, BurstTime: burstTime}
	if err := job.Validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (j Job) Validate() error {
	if j.BurstTime <= 0 {
		return &InvalidJobError{JobID: j.ID, Reason: "burst time must be positive"}
	}
	if j.ArrivalTime < 0 {
		return &InvalidJobError{JobID: j.ID, Reason: "arrival time cannot be negative"}
	}
	return nil
}

// ScheduledJob is a job together with the times the scheduler assigned to it.
type ScheduledJob struct {
	Job
	StartTime      int
	EndTime        int
	WaitingTime    int
	TurnaroundTime int
}
