package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Join results.
const (
	JoinJoined   = "joined"
	JoinQueued   = "already_queued"
	JoinCooldown = "cooldown"
)

var (
	joins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gamejoin",
		Name:      "joins_total",
		Help:      "Join attempts by result.",
	}, []string{"result"})

	draws = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gamejoin",
		Name:      "draw_rounds_total",
		Help:      "Completed draw rounds per guild.",
	}, []string{"guild"})

	winners = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gamejoin",
		Name:      "draw_winners_total",
		Help:      "Winners drawn per guild.",
	}, []string{"guild"})

	queueSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gamejoin",
		Name:      "queue_size",
		Help:      "Participants currently queued per guild.",
	}, []string{"guild"})

	drawLogErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gamejoin",
		Name:      "draw_log_errors_total",
		Help:      "Draw rounds that could not be written to the draw log.",
	})
)

func ObserveJoin(result string) { joins.WithLabelValues(result).Inc() }

func ObserveDraw(guildID string, nWinners int) {
	draws.WithLabelValues(guildID).Inc()
	winners.WithLabelValues(guildID).Add(float64(nWinners))
}

func SetQueueSize(guildID string, n int) { queueSize.WithLabelValues(guildID).Set(float64(n)) }

func DrawLogFailed() { drawLogErrors.Inc() }
