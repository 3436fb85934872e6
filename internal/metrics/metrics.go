package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexconnect_sessions_started_total",
		Help: "Number of game sessions created.",
	})

	MovesAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexconnect_moves_accepted_total",
		Help: "Number of moves that passed validation and were committed.",
	})

	MovesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hexconnect_moves_rejected_total",
		Help: "Number of rejected moves by rejection reason.",
	}, []string{"reason"})

	GamesWon = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hexconnect_games_won_total",
		Help: "Number of finished games by winning color.",
	}, []string{"color"})

	LiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hexconnect_live_sessions",
		Help: "Number of sessions currently held in memory.",
	})
)
