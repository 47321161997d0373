// Package board keeps the job list a user builds up between runs, together
// with the realistic/dynamic input mode.
//
// In realistic mode the board is locked once a run has started, the way a
// print queue cannot take new jobs mid-batch. Dynamic mode allows adding jobs
// at any time and re-runs the schedule so the last result stays current.
package board

import (
	"errors"
	"strings"
	"sync"

	"fcfs-scheduler/internal/core"
	"fcfs-scheduler/internal/schedulers"
)

var (
	ErrLocked       = errors.New("cannot add jobs once the simulation has started in realistic mode")
	ErrEmptyID      = errors.New("job id cannot be empty")
	ErrDuplicateJob = errors.New("job id already exists")
)

type Board struct {
	mu        sync.Mutex
	jobs      []core.Job
	realistic bool
	started   bool
	last      *core.Schedule
}

func New(realistic bool) *Board {
	return &Board{realistic: realistic}
}

// Add appends a job. The id is trimmed and compared case-insensitively.
func (b *Board) Add(job core.Job) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.realistic && b.started {
		return ErrLocked
	}

	job.ID = strings.TrimSpace(job.ID)
	if job.ID == "" {
		return ErrEmptyID
	}
	if err := job.Validate(); err != nil {
		return err
	}
	if b.exists(job.ID) {
		return ErrDuplicateJob
	}

	b.jobs = append(b.jobs, job)

	if b.started {
		// keep the last schedule current
		if _, err := b.run(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) Run() (core.Schedule, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.run()
}

func (b *Board) run() (core.Schedule, error) {
	schedule, err := schedulers.ScheduleFirstComeFirstServe(b.jobs)
	if err != nil {
		return core.Schedule{}, err
	}
	b.started = true
	b.last = &schedule
	return schedule, nil
}

// Clear drops every job and the last result, and unlocks the board.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jobs = nil
	b.last = nil
	b.started = false
}

func (b *Board) Jobs() []core.Job {
	b.mu.Lock()
	defer b.mu.Unlock()
	jobs := make([]core.Job, len(b.jobs))
	copy(jobs, b.jobs)
	return jobs
}

// Last returns the most recent schedule, if any run happened since the last Clear.
func (b *Board) Last() (core.Schedule, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return core.Schedule{}, false
	}
	return *b.last, true
}

func (b *Board) SetRealistic(realistic bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.realistic = realistic
}

func (b *Board) Realistic() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.realistic
}

func (b *Board) Started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

func (b *Board) exists(id string) bool {
	for _, job := range b.jobs {
		if strings.EqualFold(job.ID, id) {
			return true
		}
	}
	return false
}
