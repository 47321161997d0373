// Package batch reads job batches from yaml (or json) files.
//
//	jobs:
//	  - id: P1
//	    arrival: 0
//	    burst: 5
package batch

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fcfs-scheduler/internal/core"
)

type File struct {
	Jobs []Entry `yaml:"jobs"`
}

type Entry struct {
	ID      string `yaml:"id"`
	Arrival int    `yaml:"arrival"`
	Burst   int    `yaml:"burst"`
}

func Load(path string) ([]core.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a batch and checks ids the way the job entry form does:
// non-empty and unique regardless of case. Jobs keep their file order.
func Parse(data []byte) ([]core.Job, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}

	jobs := make([]core.Job, 0, len(file.Jobs))
	seen := make(map[string]struct{}, len(file.Jobs))
	for i, entry := range file.Jobs {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("job #%d: id cannot be empty", i+1)
		}
		key := strings.ToLower(id)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("job #%d: id %q already exists", i+1, id)
		}
		seen[key] = struct{}{}

		job, err := core.NewJob(id, entry.Arrival, entry.Burst)
		if err != nil {
			return nil, fmt.Errorf("job #%d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
