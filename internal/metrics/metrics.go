package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VerificationsTotal tracks verification calls by outcome
	// (verified, unverified, invalid_input, no_match, error).
	VerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_address_verifications_total",
		Help: "Total number of address verification requests by outcome",
	}, []string{"outcome"})

	// VerificationConfidence observes the confidence score of scored requests.
	VerificationConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_address_verification_confidence",
		Help:    "Distribution of computed confidence scores",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	// GeocodeRequestsTotal tracks outbound provider calls by endpoint.
	GeocodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_geocode_requests_total",
		Help: "Total number of geocoding provider requests",
	}, []string{"endpoint"})

	// GeocodeErrorsTotal tracks failed provider calls by endpoint.
	GeocodeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_geocode_errors_total",
		Help: "Total number of failed geocoding provider requests",
	}, []string{"endpoint"})
)

// RecordVerification increments the verification counter for an outcome.
func RecordVerification(outcome string) {
	VerificationsTotal.WithLabelValues(outcome).Inc()
}

// RecordConfidence observes one computed confidence score.
func RecordConfidence(score float64) {
	VerificationConfidence.Observe(score)
}

// RecordGeocodeRequest increments the provider request counter.
func RecordGeocodeRequest(endpoint string) {
	GeocodeRequestsTotal.WithLabelValues(endpoint).Inc()
}

// RecordGeocodeError increments the provider error counter.
func RecordGeocodeError(endpoint string) {
	GeocodeErrorsTotal.WithLabelValues(endpoint).Inc()
}
