// Package metrics — счётчики Prometheus для событий и начислений.
// Экспортируются через /metrics на HTTP-сервере.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsTotal — обработанные события по типам (join/leave/text_reply/sticker_reply/plain).
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reputation_events_total",
		Help: "Processed chat events by kind.",
	}, []string{"kind"})

	// CreditsTotal — успешные начисления репутации.
	CreditsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reputation_credits_total",
		Help: "Successful reputation credits.",
	})

	// RejectionsTotal — молчаливые отказы по причинам (self/bot/left).
	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reputation_rejections_total",
		Help: "Silently rejected acknowledgements by reason.",
	}, []string{"reason"})

	// RemovalsTotal — удаления записей при выходе участников.
	RemovalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reputation_removals_total",
		Help: "Reputation records removed after members left.",
	})

	// SendFailuresTotal — неудачные отправки сообщений в Telegram.
	SendFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reputation_send_failures_total",
		Help: "Failed outbound Telegram sends.",
	})
)
