package httpapi

//
// Metrics definitions
//

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsSummaryObjectives returns the summary objectives for promauto.NewSummaryVec.
func metricsSummaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.5:  0.010, // 0.490 <= φ <= 0.510
		0.9:  0.010, // 0.899 <= φ <= 0.901
		0.99: 0.001, // 0.989 <= φ <= 0.991
	}
}

const (
	// outcomeOK means we received a response with status code < 400.
	outcomeOK = "ok"

	// outcomeHTTPError means we received a response with status code >= 400.
	outcomeHTTPError = "http_error"

	// outcomeNetworkError means the round trip or reading the body failed.
	outcomeNetworkError = "network_error"

	// outcomeBodyTooLarge means the response body exceeded MaxBodySize.
	outcomeBodyTooLarge = "body_too_large"
)

var (
	// metricRequestsCount counts the API calls by path and outcome.
	metricRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backupsdk_api_requests_count",
		Help: "Total number of API calls by path and outcome",
	}, []string{"path", "outcome"})

	// metricRequestDurationSeconds summarizes the duration of API calls.
	metricRequestDurationSeconds = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Name:       "backupsdk_api_request_duration_seconds",
		Help:       "Summarizes the time to complete an API call (in seconds)",
		Objectives: metricsSummaryObjectives(),
	}, []string{"path"})
)
