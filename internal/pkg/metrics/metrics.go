package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

// AssistantMetrics counts assistant replies per desk and tracks how many
// sessions are held in memory.
type AssistantMetrics struct {
	Replies        *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
}

func NewAssistantMetrics(reg prometheus.Registerer) *AssistantMetrics {
	m := &AssistantMetrics{
		Replies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "afrimigrate",
			Subsystem: "assistant",
			Name:      "replies_total",
			Help:      "Assistant replies by desk and whether an answer matched.",
		}, []string{"desk", "outcome"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "afrimigrate",
			Subsystem: "assistant",
			Name:      "sessions_active",
			Help:      "Assistant sessions currently held in memory.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Replies, m.ActiveSessions)
	}
	return m
}

func (m *AssistantMetrics) ObserveReply(desk string, matched bool) {
	outcome := OutcomeFallback
	if matched {
		outcome = OutcomeMatched
	}
	m.Replies.WithLabelValues(desk, outcome).Inc()
}
