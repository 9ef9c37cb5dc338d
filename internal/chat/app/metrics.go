package app

import "github.com/prometheus/client_golang/prometheus"

// Metrics chat realtime prometheus collectors
type Metrics struct {
	OnlineUsers  prometheus.Gauge
	Connections  prometheus.Gauge
	Events       *prometheus.CounterVec
	PushOK       *prometheus.CounterVec
	PushOffline  *prometheus.CounterVec
	Backpressure prometheus.Counter
}

// NewMetrics create and register collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OnlineUsers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chat_online_users",
			Help: "Current identified users in presence registry.",
		}),
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chat_ws_connections",
			Help: "Current open websocket connections, identified or not.",
		}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_ws_events_total",
			Help: "Total inbound websocket events by action.",
		}, []string{"action"}),
		PushOK: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_ws_push_ok_total",
			Help: "Total events queued to a target user's connection.",
		}, []string{"action"}),
		PushOffline: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_ws_push_offline_total",
			Help: "Total pushes skipped because the target user had no connection.",
		}, []string{"action"}),
		Backpressure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_ws_backpressure_total",
			Help: "Total connections closed because the outbound queue was full.",
		}),
	}

	reg.MustRegister(
		m.OnlineUsers, m.Connections,
		m.Events, m.PushOK, m.PushOffline, m.Backpressure,
	)
	return m
}
