package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"fcfs-scheduler/internal/batch"
	"fcfs-scheduler/internal/core"
	"fcfs-scheduler/internal/schedulers"
)

type runCommand struct {
	asJSON bool
}

// RunCommand schedules a batch file and prints the result.
func RunCommand() *cobra.Command {
	run := &runCommand{}

	cmd := &cobra.Command{
		Use:     "run <batch-file>",
		Short:   "Schedule the jobs of a batch file",
		Long:    "Reads a yaml or json batch file with jobs (id, arrival, burst)\nand prints the FCFS schedule.",
		Example: "fcfs run jobs.yaml",
		Args:    cobra.ExactArgs(1),
		RunE:    run.RunE,
	}

	cmd.Flags().BoolVar(&run.asJSON, "json", false, "Print the schedule as json")
	return cmd
}

func (r *runCommand) RunE(cmd *cobra.Command, args []string) error {
	jobs, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	schedule, err := schedulers.ScheduleFirstComeFirstServe(jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if r.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(schedulers.GenerateResponse(schedule))
	}
	printSchedule(out, schedule)
	return nil
}

func printSchedule(w io.Writer, schedule core.Schedule) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Job ID", "Arrival", "Burst", "Start", "End", "Turnaround", "Wait"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	for _, job := range schedule.ExecutionOrder() {
		table.Append([]string{
			job.ID,
			strconv.Itoa(job.ArrivalTime),
			strconv.Itoa(job.BurstTime),
			strconv.Itoa(job.StartTime),
			strconv.Itoa(job.EndTime),
			strconv.Itoa(job.TurnaroundTime),
			strconv.Itoa(job.WaitingTime),
		})
	}
	table.Render()

	gantt := tablewriter.NewWriter(w)
	gantt.SetBorder(false)
	gantt.SetHeader([]string{"Slot", "From", "To"})
	gantt.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, slice := range schedule.Timeline {
		name := slice.JobID
		if slice.Idle {
			name = "IDLE"
		}
		gantt.Append([]string{name, strconv.Itoa(slice.Start), strconv.Itoa(slice.End)})
	}
	gantt.Render()

	fmt.Fprintf(w, "Average Waiting Time: %.2f\n", schedule.AverageWaitingTime)
	fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", schedule.AverageTurnaroundTime)
	fmt.Fprintf(w, "CPU Utilization: %.2f%%\n", schedule.Metric.Utilization()*100)
}
