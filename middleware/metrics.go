package middleware

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reoring/jsonapi"
)

// Outcome labels recorded by Metrics.
const (
	OutcomeValid                = "valid"
	OutcomeInvalidDocument      = "invalid_document"
	OutcomeDecodeError          = "decode_error"
	OutcomeUnsupportedMediaType = "unsupported_media_type"
)

// Metrics records validation outcomes and latency. A nil *Metrics records
// nothing.
type Metrics struct {
	validations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		validations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "jsonapi",
				Name:      "validations_total",
				Help:      "Total number of validated request bodies by payload kind and outcome",
			},
			[]string{"payload", "outcome"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "jsonapi",
				Name:      "validation_duration_seconds",
				Help:      "Time taken to read, decode and validate a request body",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"payload"},
		),
	}
}

// Outcome classifies a Check error into one of the Outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeValid
	case errors.Is(err, ErrUnsupportedMediaType):
		return OutcomeUnsupportedMediaType
	}
	if _, ok := jsonapi.AsInvalidDocument(err); ok {
		return OutcomeInvalidDocument
	}
	return OutcomeDecodeError
}

func (m *Metrics) observe(kind jsonapi.PayloadKind, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(kind.String(), Outcome(err)).Inc()
	m.duration.WithLabelValues(kind.String()).Observe(d.Seconds())
}
