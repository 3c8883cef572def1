package mappers

import (
	"github.com/google/uuid"
	"github.com/jobvault/jobs-api/internal/store/model"
)

// JobCreateForm carries the validated inputs of a job creation. OwnerID is
// always taken from the authenticated caller, never from the payload.
type JobCreateForm struct {
	OwnerID  string
	Company  string
	Position string
	Status   string
	JobType  string
}

func (f JobCreateForm) ToModel() model.Job {
	status := f.Status
	if status == "" {
		status = model.JobStatusPending
	}
	jobType := f.JobType
	if jobType == "" {
		jobType = model.JobTypeFullTime
	}

	return model.Job{
		ID:       uuid.New(),
		OwnerID:  f.OwnerID,
		Company:  f.Company,
		Position: f.Position,
		Status:   status,
		JobType:  jobType,
	}
}
