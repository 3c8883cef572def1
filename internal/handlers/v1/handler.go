// Package v1 exposes the jobs API handlers. Handlers translate the HTTP
// boundary (query parameters, payloads, typed service errors) and delegate
// everything else to the service layer.
package v1

import (
	"net/http"

	"github.com/go-chi/render"
	api "github.com/jobvault/jobs-api/api/v1"
	"github.com/jobvault/jobs-api/internal/service"
	"github.com/jobvault/jobs-api/pkg/requestid"
)

type ServiceHandler struct {
	jobSrv *service.JobService
}

func NewServiceHandler(jobSrv *service.JobService) *ServiceHandler {
	return &ServiceHandler{jobSrv: jobSrv}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{Message: message, RequestId: requestid.FromContextPtr(r.Context())})
}
