package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	jobsAPI = "jobs_api"

	jobsCreatedTotal = "jobs_created_total"
	jobsDeletedTotal = "jobs_deleted_total"

	jobStatusLabel = "status"
)

var jobsCreatedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: jobsAPI,
		Name:      jobsCreatedTotal,
		Help:      "number of job applications created, partitioned by status",
	},
	[]string{jobStatusLabel},
)

var jobsDeletedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: jobsAPI,
		Name:      jobsDeletedTotal,
		Help:      "number of job applications deleted",
	},
)

func IncreaseJobsCreatedTotalMetric(status string) {
	jobsCreatedTotalMetric.With(prometheus.Labels{jobStatusLabel: status}).Inc()
}

func IncreaseJobsDeletedTotalMetric() {
	jobsDeletedTotalMetric.Inc()
}

type PrometheusMetricsHandler struct{}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	prometheus.MustRegister(jobsCreatedTotalMetric)
	prometheus.MustRegister(jobsDeletedTotalMetric)
	return &PrometheusMetricsHandler{}
}

func (h *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}
