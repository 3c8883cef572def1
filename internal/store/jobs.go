package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobvault/jobs-api/internal/store/model"
	"gorm.io/gorm"
)

type Job interface {
	List(ctx context.Context, filter *JobQueryFilter, opts *JobQueryOptions) (model.JobList, error)
	Count(ctx context.Context, filter *JobQueryFilter) (int64, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, job model.Job) (*model.Job, error)
	Update(ctx context.Context, ownerID string, id uuid.UUID, patch model.JobPatch) (*model.Job, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
	CountByStatus(ctx context.Context, ownerID string) ([]model.StatusCount, error)
	CountByMonth(ctx context.Context, ownerID string, months int) ([]model.MonthlyCount, error)
	InitialMigration() error
}

type JobStore struct {
	db *gorm.DB
}

// Make sure we conform to Job interface
var _ Job = (*JobStore)(nil)

func NewJobStore(db *gorm.DB) Job {
	return &JobStore{db: db}
}

func (s *JobStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.Job{})
}

func (s *JobStore) List(ctx context.Context, filter *JobQueryFilter, opts *JobQueryOptions) (model.JobList, error) {
	var jobs model.JobList
	tx := s.db.WithContext(ctx).Model(&jobs)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}
	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	result := tx.Find(&jobs)
	if result.Error != nil {
		return nil, result.Error
	}
	return jobs, nil
}

// Count counts the rows matching the filter, ignoring any paging or ordering.
func (s *JobStore) Count(ctx context.Context, filter *JobQueryFilter) (int64, error) {
	var count int64
	tx := s.db.WithContext(ctx).Model(&model.Job{})

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Count(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *JobStore) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	result := s.db.WithContext(ctx).First(&job, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &job, nil
}

func (s *JobStore) Create(ctx context.Context, job model.Job) (*model.Job, error) {
	result := s.db.WithContext(ctx).Create(&job)
	if result.Error != nil {
		return nil, result.Error
	}
	return &job, nil
}

func (s *JobStore) Update(ctx context.Context, ownerID string, id uuid.UUID, patch model.JobPatch) (*model.Job, error) {
	var job model.Job
	if err := s.db.WithContext(ctx).First(&job, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	selectFields := []string{}
	if patch.Company != nil {
		job.Company = *patch.Company
		selectFields = append(selectFields, "company")
	}
	if patch.Position != nil {
		job.Position = *patch.Position
		selectFields = append(selectFields, "position")
	}
	if patch.Status != nil {
		job.Status = *patch.Status
		selectFields = append(selectFields, "status")
	}
	if patch.JobType != nil {
		job.JobType = *patch.JobType
		selectFields = append(selectFields, "job_type")
	}

	if len(selectFields) == 0 {
		return &job, nil
	}

	if result := s.db.WithContext(ctx).Model(&job).Select(selectFields).Updates(&job); result.Error != nil {
		return nil, result.Error
	}
	return &job, nil
}

func (s *JobStore) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.Job{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CountByStatus groups the owner's jobs by status. Only statuses with at
// least one row appear in the result.
func (s *JobStore) CountByStatus(ctx context.Context, ownerID string) ([]model.StatusCount, error) {
	var counts []model.StatusCount
	result := s.db.WithContext(ctx).Model(&model.Job{}).
		Select("status, COUNT(*) AS count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	return counts, nil
}

// CountByMonth groups the owner's jobs by calendar year and month of
// created_at and returns up to months groups, most recent first. Year and
// month extraction differ per dialect, everything else is shared.
func (s *JobStore) CountByMonth(ctx context.Context, ownerID string, months int) ([]model.MonthlyCount, error) {
	yearExpr := "CAST(strftime('%Y', created_at) AS INTEGER)"
	monthExpr := "CAST(strftime('%m', created_at) AS INTEGER)"
	if s.db.Dialector.Name() == "postgres" {
		yearExpr = "EXTRACT(YEAR FROM created_at)::int"
		monthExpr = "EXTRACT(MONTH FROM created_at)::int"
	}

	var counts []model.MonthlyCount
	result := s.db.WithContext(ctx).Model(&model.Job{}).
		Select(fmt.Sprintf("%s AS year, %s AS month, COUNT(*) AS count", yearExpr, monthExpr)).
		Where("owner_id = ?", ownerID).
		Group("year").Group("month").
		Order("year DESC, month DESC").
		Limit(months).
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	return counts, nil
}
