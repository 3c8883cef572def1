package mappers

import (
	api "github.com/jobvault/jobs-api/api/v1"
	"github.com/jobvault/jobs-api/internal/service"
	"github.com/jobvault/jobs-api/internal/store/model"
)

func JobToApi(job model.Job) api.Job {
	return api.Job{
		Id:        job.ID.String(),
		Company:   job.Company,
		Position:  job.Position,
		Status:    job.Status,
		JobType:   job.JobType,
		CreatedBy: job.OwnerID,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

func JobListToApi(jobs model.JobList, total int64, pageCount int) api.JobList {
	apiJobs := make([]api.Job, 0, len(jobs))
	for _, job := range jobs {
		apiJobs = append(apiJobs, JobToApi(job))
	}
	return api.JobList{
		Jobs:       apiJobs,
		TotalJobs:  total,
		NumOfPages: pageCount,
	}
}

func StatsToApi(summary service.StatusSummary, series []service.MonthlyApplications) api.Stats {
	monthly := make([]api.MonthlyApplication, 0, len(series))
	for _, point := range series {
		monthly = append(monthly, api.MonthlyApplication{Date: point.Date, Count: point.Count})
	}
	return api.Stats{
		DefaultStats: api.DefaultStats{
			Pending:   summary.Pending,
			Interview: summary.Interview,
			Declined:  summary.Declined,
		},
		MonthlyApplications: monthly,
	}
}
