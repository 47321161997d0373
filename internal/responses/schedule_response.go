package responses

type ProcessResponse struct {
	JobId          string `json:"job_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	StartTime      int    `json:"start_time"`
	EndTime        int    `json:"end_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
}

type GanttEntry struct {
	JobId string `json:"job_id,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Idle  bool   `json:"idle"`
}

type ScheduleResponse struct {
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Gantt                 []GanttEntry      `json:"gantt"`
}

type JobResponse struct {
	JobId       string `json:"job_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

type BoardResponse struct {
	Realistic bool          `json:"realistic"`
	Started   bool          `json:"started"`
	Jobs      []JobResponse `json:"jobs"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	JobId string `json:"job_id,omitempty"`
}
