package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jobvault/jobs-api/internal/store/model"
)

// monthlySeriesLength caps the monthly series at the 6 most recent months.
const monthlySeriesLength = 6

// StatusSummary is the fixed-shape status histogram. Statuses outside the
// three known values are dropped, not surfaced.
type StatusSummary struct {
	Pending   int64
	Interview int64
	Declined  int64
}

// MonthlyApplications is one point of the monthly series. Date reads like
// "Jan 2024".
type MonthlyApplications struct {
	Date  string
	Count int64
}

// GetStats computes the status histogram and the monthly application series
// for one owner. The two reads are independent; under concurrent writes they
// may reflect slightly different snapshots, which is acceptable here.
func (s *JobService) GetStats(ctx context.Context, ownerID string) (StatusSummary, []MonthlyApplications, error) {
	statusCounts, err := s.store.Job().CountByStatus(ctx, ownerID)
	if err != nil {
		return StatusSummary{}, nil, fmt.Errorf("failed to count jobs by status: %w", err)
	}

	var summary StatusSummary
	for _, sc := range statusCounts {
		switch sc.Status {
		case model.JobStatusPending:
			summary.Pending = sc.Count
		case model.JobStatusInterview:
			summary.Interview = sc.Count
		case model.JobStatusDeclined:
			summary.Declined = sc.Count
		}
	}

	monthCounts, err := s.store.Job().CountByMonth(ctx, ownerID, monthlySeriesLength)
	if err != nil {
		return StatusSummary{}, nil, fmt.Errorf("failed to count jobs by month: %w", err)
	}

	// The store hands back the most recent months first. Walk the slice
	// backwards so the series ends up chronologically ascending.
	series := make([]MonthlyApplications, 0, len(monthCounts))
	for i := len(monthCounts) - 1; i >= 0; i-- {
		mc := monthCounts[i]
		series = append(series, MonthlyApplications{
			Date:  monthLabel(mc.Year, mc.Month),
			Count: mc.Count,
		})
	}

	return summary, series, nil
}

// monthLabel renders a 1-indexed calendar month as "Jan 2006".
func monthLabel(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}
