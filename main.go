package main

import (
	"os"

	"fcfs-scheduler/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
