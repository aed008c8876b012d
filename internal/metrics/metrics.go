package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pwgen"

// Metrics holds the counters recorded by the generator service.
type Metrics struct {
	generated     prometheus.Counter
	generateErrs  *prometheus.CounterVec
	verifications *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Number of passwords generated.",
		}),
		generateErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generate_errors_total",
			Help:      "Number of rejected or failed generation requests.",
		}, []string{"reason"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Number of strength checks, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.generated, m.generateErrs, m.verifications)
	return m
}

// Generated records a successfully generated password.
func (m *Metrics) Generated() {
	if m == nil {
		return
	}
	m.generated.Inc()
}

// GenerateFailed records a failed generation attempt.
func (m *Metrics) GenerateFailed(reason string) {
	if m == nil {
		return
	}
	m.generateErrs.WithLabelValues(reason).Inc()
}

// Verified records the outcome of a strength check.
func (m *Metrics) Verified(strong bool) {
	if m == nil {
		return
	}
	result := "weak"
	if strong {
		result = "strong"
	}
	m.verifications.WithLabelValues(result).Inc()
}
