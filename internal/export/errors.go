package export

import (
	"errors"
	"fmt"
)

// ErrReportGeneration is the single user-facing export failure.
var ErrReportGeneration = errors.New("report generation failed")

// GenerationError carries the cause of a failed render. It matches
// ErrReportGeneration with errors.Is.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", ErrReportGeneration, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrReportGeneration, e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool { return target == ErrReportGeneration }
