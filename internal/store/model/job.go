package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusPending   = "pending"
	JobStatusInterview = "interview"
	JobStatusDeclined  = "declined"

	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeRemote     = "remote"
	JobTypeInternship = "internship"
)

// Job is a single job application. OwnerID is fixed at creation and every
// query is scoped by it.
type Job struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	Company   string    `gorm:"not null"`
	Position  string    `gorm:"not null"`
	Status    string    `gorm:"not null;default:pending"`
	JobType   string    `gorm:"not null;default:full-time"`
	OwnerID   string    `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type JobList []Job

func (j Job) String() string {
	val, _ := json.Marshal(j)
	return string(val)
}

// JobPatch carries the fields an update may change. Nil means "leave as is".
type JobPatch struct {
	Company  *string
	Position *string
	Status   *string
	JobType  *string
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status string
	Count  int64
}

// MonthlyCount is one row of the per-month aggregation. Month is 1-indexed,
// matching both EXTRACT(MONTH ...) and strftime('%m', ...).
type MonthlyCount struct {
	Year  int
	Month int
	Count int64
}
