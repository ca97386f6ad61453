package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelStrategy = "strategy"
	labelOutcome  = "outcome"
	labelResult   = "result"
)

var (
	spins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wheel_spins_total",
		Help: "Принятые решения по спинам",
	}, []string{labelStrategy, labelOutcome})

	conflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wheel_spin_conflicts_total",
		Help: "Отклоненные спины при незавершенном спине сессии",
	})

	committed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wheel_spins_committed_total",
		Help: "Спины, записанные в историю",
	}, []string{labelOutcome})

	leads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wheel_leads_total",
		Help: "Попытки сохранить участника",
	}, []string{labelResult})
)

func outcome(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// SpinDecided - решение принято
func SpinDecided(strategy string, won bool) {
	spins.WithLabelValues(strategy, outcome(won)).Inc()
}

// SpinRejected - спин отклонен, колесо уже крутится
func SpinRejected() {
	conflicts.Inc()
}

// SpinCommitted - исход записан в историю
func SpinCommitted(won bool) {
	committed.WithLabelValues(outcome(won)).Inc()
}

// LeadSaved - result: saved, invalid, failed
func LeadSaved(result string) {
	leads.WithLabelValues(result).Inc()
}
