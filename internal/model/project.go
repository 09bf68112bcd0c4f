package model

import "time"

// Project owns one interview transcript and at most one stored summary.
// Generating a summary overwrites any prior one and clears the transcript:
// a one-way Open -> Summarized transition with no reopen path.
type Project struct {
	ID          int64
	Name        string
	Description *string
	Summary     *string // serialized Summary JSON, nil until first generation
	CreatedAt   time.Time
}
