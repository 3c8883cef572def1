package store

import (
	"strings"

	"gorm.io/gorm"
)

// SortOrder enumerates the orderings the job store knows about. SortNone
// leaves the rows in the store's natural order.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortByNewest
	SortByOldest
	SortByPositionAsc
	SortByPositionDesc
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type JobQueryFilter BaseQuerier

func NewJobQueryFilter() *JobQueryFilter {
	return &JobQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

// ByOwner scopes the query to one owner. Every caller-facing query must
// apply it.
func (qf *JobQueryFilter) ByOwner(ownerID string) *JobQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID)
	})
	return qf
}

// likeEscaper neutralizes LIKE metacharacters so the search term only ever
// matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ByPositionSearch restricts to rows whose position contains the term as a
// case-insensitive literal substring. lower(...) LIKE keeps it portable
// between postgres and sqlite.
func (qf *JobQueryFilter) ByPositionSearch(term string) *JobQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where(`lower(position) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(term))+"%")
	})
	return qf
}

func (qf *JobQueryFilter) ByStatus(status string) *JobQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ?", status)
	})
	return qf
}

func (qf *JobQueryFilter) ByJobType(jobType string) *JobQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("job_type = ?", jobType)
	})
	return qf
}

type JobQueryOptions BaseQuerier

func NewJobQueryOptions() *JobQueryOptions {
	return &JobQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *JobQueryOptions) WithSortOrder(sort SortOrder) *JobQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByNewest:
			return tx.Order("created_at DESC")
		case SortByOldest:
			return tx.Order("created_at ASC")
		case SortByPositionAsc:
			return tx.Order("position ASC")
		case SortByPositionDesc:
			return tx.Order("position DESC")
		default:
			return tx
		}
	})
	return o
}

func (o *JobQueryOptions) WithOffset(offset int) *JobQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}

func (o *JobQueryOptions) WithLimit(limit int) *JobQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}
