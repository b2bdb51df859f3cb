package domain

import (
	"fmt"
	"maps"
)

// JobType is the legality category of a job
type JobType string

const (
	JobTypeLegal   JobType = "legal"
	JobTypeIllegal JobType = "illegal"
)

// Job is an entry of the job catalog
type Job struct {
	Title  string  `yaml:"title" json:"title"`
	Type   JobType `yaml:"type" json:"type"`
	Salary int     `yaml:"salary" json:"salary"`

	// Requirements maps a stat or trait to a minimum value. Informational only:
	// nothing checks a character against it.
	Requirements map[string]int `yaml:"requirements,omitempty" json:"requirements,omitempty"`
}

// Clone returns a copy that shares no maps with j
func (j Job) Clone() Job {
	j.Requirements = maps.Clone(j.Requirements)
	return j
}

// String formats the job as "Title (type) - Salary: $N"
func (j Job) String() string {
	return fmt.Sprintf("%s (%s) - Salary: $%d", j.Title, j.Type, j.Salary)
}
