package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobvault/jobs-api/internal/service/mappers"
	"github.com/jobvault/jobs-api/internal/store"
	"github.com/jobvault/jobs-api/internal/store/model"
	"github.com/jobvault/jobs-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type JobService struct {
	store store.Store
}

func NewJobService(store store.Store) *JobService {
	return &JobService{store: store}
}

// ListJobs returns the owner's jobs matching the filter, plus the total
// count of the matching set independent of paging and the resulting number
// of pages. All filter fields except OwnerID are optional; empty means no
// constraint.
func (s *JobService) ListJobs(ctx context.Context, filter *JobFilter) (model.JobList, int64, int, error) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	storeFilter := store.NewJobQueryFilter().ByOwner(filter.OwnerID)
	if filter.Search != "" {
		storeFilter = storeFilter.ByPositionSearch(filter.Search)
	}
	if filter.Status != "" {
		storeFilter = storeFilter.ByStatus(filter.Status)
	}
	if filter.JobType != "" {
		storeFilter = storeFilter.ByJobType(filter.JobType)
	}

	opts := store.NewJobQueryOptions().
		WithSortOrder(filter.Sort).
		WithOffset((page - 1) * limit).
		WithLimit(limit)

	jobs, err := s.store.Job().List(ctx, storeFilter, opts)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	total, err := s.store.Job().Count(ctx, storeFilter)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	pageCount := int((total + int64(limit) - 1) / int64(limit))

	zap.S().Named("job_service").Debugw("listed jobs",
		"owner_id", filter.OwnerID, "count", len(jobs), "total", total, "pages", pageCount)
	return jobs, total, pageCount, nil
}

func (s *JobService) GetJob(ctx context.Context, ownerID string, id uuid.UUID) (*model.Job, error) {
	job, err := s.store.Job().Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

func (s *JobService) CreateJob(ctx context.Context, form mappers.JobCreateForm) (*model.Job, error) {
	job, err := s.store.Job().Create(ctx, form.ToModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	metrics.IncreaseJobsCreatedTotalMetric(job.Status)
	zap.S().Named("job_service").Infow("job created", "job_id", job.ID, "owner_id", job.OwnerID)
	return job, nil
}

// UpdateJob applies the patch to an owned job and returns the post-update
// record. Explicitly blanking company or position is rejected before the
// store is touched; all other fields pass through unchecked.
func (s *JobService) UpdateJob(ctx context.Context, ownerID string, id uuid.UUID, patch model.JobPatch) (*model.Job, error) {
	if (patch.Company != nil && *patch.Company == "") || (patch.Position != nil && *patch.Position == "") {
		return nil, NewErrEmptyJobField()
	}

	job, err := s.store.Job().Update(ctx, ownerID, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, ownerID string, id uuid.UUID) error {
	if err := s.store.Job().Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrJobNotFound(id)
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	metrics.IncreaseJobsDeletedTotalMetric()
	zap.S().Named("job_service").Infow("job deleted", "job_id", id, "owner_id", ownerID)
	return nil
}

// JobFilter represents filtering, sorting and paging options for listing
// jobs. Zero values mean "no constraint" except OwnerID which is mandatory.
type JobFilter struct {
	OwnerID string
	Search  string
	Status  string
	JobType string
	Sort    store.SortOrder
	Page    int
	Limit   int
}

func NewJobFilter(ownerID string) *JobFilter {
	return &JobFilter{OwnerID: ownerID}
}

func (f *JobFilter) WithSearch(term string) *JobFilter {
	f.Search = term
	return f
}

func (f *JobFilter) WithStatus(status string) *JobFilter {
	f.Status = status
	return f
}

func (f *JobFilter) WithJobType(jobType string) *JobFilter {
	f.JobType = jobType
	return f
}

func (f *JobFilter) WithSortOrder(sort store.SortOrder) *JobFilter {
	f.Sort = sort
	return f
}

func (f *JobFilter) WithPagination(page, limit int) *JobFilter {
	f.Page = page
	f.Limit = limit
	return f
}
