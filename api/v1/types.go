// Package v1 holds the wire types of the jobs API.
package v1

import (
	"time"
)

type Job struct {
	Id        string    `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    string    `json:"status"`
	JobType   string    `json:"jobType"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobList is the paged list response. TotalJobs counts the whole matching
// set independent of paging; NumOfPages derives from it and the page size.
type JobList struct {
	Jobs       []Job `json:"jobs"`
	TotalJobs  int64 `json:"totalJobs"`
	NumOfPages int   `json:"numOfPages"`
}

type JobCreate struct {
	Company  string `json:"company" validate:"required"`
	Position string `json:"position" validate:"required"`
	Status   string `json:"status,omitempty" validate:"omitempty,jobStatus"`
	JobType  string `json:"jobType,omitempty" validate:"omitempty,jobType"`
}

// JobUpdate is a partial patch. Nil fields are left untouched. Company and
// Position may not be set to empty strings.
type JobUpdate struct {
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
	Status   *string `json:"status,omitempty" validate:"omitempty,jobStatus"`
	JobType  *string `json:"jobType,omitempty" validate:"omitempty,jobType"`
}

// DefaultStats is the fixed-shape status histogram. All three keys are
// always present, zero when no jobs carry that status.
type DefaultStats struct {
	Pending   int64 `json:"pending"`
	Interview int64 `json:"interview"`
	Declined  int64 `json:"declined"`
}

type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Stats struct {
	DefaultStats        DefaultStats         `json:"defaultStats"`
	MonthlyApplications []MonthlyApplication `json:"monthlyApplications"`
}

type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}
