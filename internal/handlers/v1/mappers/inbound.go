package mappers

import (
	"net/url"
	"strconv"

	api "github.com/jobvault/jobs-api/api/v1"
	"github.com/jobvault/jobs-api/internal/service"
	"github.com/jobvault/jobs-api/internal/service/mappers"
	"github.com/jobvault/jobs-api/internal/store"
	"github.com/jobvault/jobs-api/internal/store/model"
)

// allSentinel is the reserved filter value meaning "no constraint". It is
// translated here, at the boundary, and never reaches the service layer.
const allSentinel = "all"

const (
	defaultPage  = 1
	defaultLimit = 10
)

// JobFilterFromQuery maps raw query parameters to a service filter. The
// parsing is deliberately lenient: non-numeric or non-positive page/limit
// fall back to defaults, an unrecognized sort means natural order, and
// unknown status/jobType values simply match nothing. Nothing here errors.
func JobFilterFromQuery(ownerID string, query url.Values) *service.JobFilter {
	filter := service.NewJobFilter(ownerID).
		WithSearch(query.Get("search")).
		WithStatus(optionalFilterValue(query.Get("status"))).
		WithJobType(optionalFilterValue(query.Get("jobType"))).
		WithSortOrder(sortOrderFromApi(query.Get("sort"))).
		WithPagination(
			parsePositiveInt(query.Get("page"), defaultPage),
			parsePositiveInt(query.Get("limit"), defaultLimit),
		)
	return filter
}

func optionalFilterValue(raw string) string {
	if raw == allSentinel {
		return ""
	}
	return raw
}

func sortOrderFromApi(raw string) store.SortOrder {
	switch raw {
	case "latest":
		return store.SortByNewest
	case "oldest":
		return store.SortByOldest
	case "a-z":
		return store.SortByPositionAsc
	case "z-a":
		return store.SortByPositionDesc
	default:
		return store.SortNone
	}
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func JobCreateFormFromApi(resource api.JobCreate, ownerID string) mappers.JobCreateForm {
	return mappers.JobCreateForm{
		OwnerID:  ownerID,
		Company:  resource.Company,
		Position: resource.Position,
		Status:   resource.Status,
		JobType:  resource.JobType,
	}
}

func JobPatchFromApi(resource api.JobUpdate) model.JobPatch {
	return model.JobPatch{
		Company:  resource.Company,
		Position: resource.Position,
		Status:   resource.Status,
		JobType:  resource.JobType,
	}
}
