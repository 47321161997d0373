package core

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch matches any *EmptyBatchError through errors.Is.
var ErrEmptyBatch = errors.New("no jobs to schedule")

type InvalidJobError struct {
	JobID  string
	Reason string
}

func (e *InvalidJobError) Error() string {
	return fmt.Sprintf("invalid job %q: %s", e.JobID, e.Reason)
}

type EmptyBatchError struct{}

func (e *EmptyBatchError) Error() string { return ErrEmptyBatch.Error() }

func (e *EmptyBatchError) Is(target error) bool { return target == ErrEmptyBatch }
