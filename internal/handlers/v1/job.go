package v1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	api "github.com/jobvault/jobs-api/api/v1"
	"github.com/jobvault/jobs-api/internal/auth"
	"github.com/jobvault/jobs-api/internal/handlers/v1/mappers"
	"github.com/jobvault/jobs-api/internal/handlers/validator"
	"github.com/jobvault/jobs-api/internal/service"
	"go.uber.org/zap"
)

// (GET /api/v1/jobs)
func (h *ServiceHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	filter := mappers.JobFilterFromQuery(user.ID, r.URL.Query())

	jobs, total, pageCount, err := h.jobSrv.ListJobs(ctx, filter)
	if err != nil {
		zap.S().Named("job_handler").Errorw("failed to list jobs", "error", err, "owner_id", user.ID)
		renderError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to list jobs: %v", err))
		return
	}

	render.JSON(w, r, mappers.JobListToApi(jobs, total, pageCount))
}

// (POST /api/v1/jobs)
func (h *ServiceHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	var resource api.JobCreate
	if err := render.DecodeJSON(r.Body, &resource); err != nil {
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request body: %v", err))
		return
	}

	if err := validateJobData(resource); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobSrv.CreateJob(ctx, mappers.JobCreateFormFromApi(resource, user.ID))
	if err != nil {
		zap.S().Named("job_handler").Errorw("failed to create job", "error", err, "owner_id", user.ID)
		renderError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to create job: %v", err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.JobToApi(*job))
}

// (GET /api/v1/jobs/{id})
func (h *ServiceHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	jobID, ok := jobIDFromRequest(w, r)
	if !ok {
		return
	}

	job, err := h.jobSrv.GetJob(ctx, user.ID, jobID)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		default:
			zap.S().Named("job_handler").Errorw("failed to get job", "error", err, "job_id", jobID)
			renderError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to get job: %v", err))
		}
		return
	}

	render.JSON(w, r, mappers.JobToApi(*job))
}

// (PATCH /api/v1/jobs/{id})
func (h *ServiceHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	jobID, ok := jobIDFromRequest(w, r)
	if !ok {
		return
	}

	var resource api.JobUpdate
	if err := render.DecodeJSON(r.Body, &resource); err != nil {
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request body: %v", err))
		return
	}

	if err := validateJobData(resource); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobSrv.UpdateJob(ctx, user.ID, jobID, mappers.JobPatchFromApi(resource))
	if err != nil {
		switch err.(type) {
		case *service.ErrEmptyJobField:
			renderError(w, r, http.StatusBadRequest, err.Error())
		case *service.ErrResourceNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		default:
			zap.S().Named("job_handler").Errorw("failed to update job", "error", err, "job_id", jobID)
			renderError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to update job: %v", err))
		}
		return
	}

	render.JSON(w, r, mappers.JobToApi(*job))
}

// (DELETE /api/v1/jobs/{id})
func (h *ServiceHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	jobID, ok := jobIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.jobSrv.DeleteJob(ctx, user.ID, jobID); err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			renderError(w, r, http.StatusNotFound, err.Error())
		default:
			zap.S().Named("job_handler").Errorw("failed to delete job", "error", err, "job_id", jobID)
			renderError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to delete job: %v", err))
		}
		return
	}

	render.NoContent(w, r)
}

// (GET /api/v1/jobs/stats)
func (h *ServiceHandler) ShowStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.MustHaveUser(ctx)

	summary, series, err := h.jobSrv.GetStats(ctx, user.ID)
	if err != nil {
		zap.S().Named("job_handler").Errorw("failed to compute stats", "error", err, "owner_id", user.ID)
		renderError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to compute stats: %v", err))
		return
	}

	render.JSON(w, r, mappers.StatsToApi(summary, series))
}

func jobIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	jobID, err := uuid.Parse(raw)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job id %q", raw))
		return uuid.UUID{}, false
	}
	return jobID, true
}

func validateJobData(data interface{}) error {
	v := validator.NewValidator()
	v.Register(validator.NewJobValidationRules()...)
	return v.Struct(data)
}
