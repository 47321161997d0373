package util

import "fcfs-scheduler/internal/core"

func CalculateAverage(jobs []core.ScheduledJob) (averageWaitingTime, averageTurnAroundTime float64, err error) {
	if len(jobs) == 0 {
		return 0, 0, &core.EmptyBatchError{}
	}

	var waitingTimeSum int
	var turnAroundTimeSum int

	for _, job := range jobs {
		waitingTimeSum += job.WaitingTime
		turnAroundTimeSum += job.TurnaroundTime
	}

	jobCount := float64(len(jobs))

	averageWaitingTime = float64(waitingTimeSum) / jobCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / jobCount
	return
}
