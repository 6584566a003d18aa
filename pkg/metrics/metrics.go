package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_rooms_created_total",
		Help: "Rooms created since process start.",
	})
	ParticipantsJoined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_participants_joined_total",
		Help: "Participant joins across all rooms.",
	})
	ParticipantsCurrent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "relay_participants_current",
		Help: "Participants currently joined across all rooms.",
	})
	BroadcastsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_broadcasts_total",
		Help: "Room broadcasts performed.",
	})
	SendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relay_send_failures_total",
		Help: "Per-participant send failures during broadcast.",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
