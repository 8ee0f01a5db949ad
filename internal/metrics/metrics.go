// Package metrics exposes chamber activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tobacco_drying/internal/models"
)

// Recorder turns chamber events into metrics. It implements chamber.Observer.
type Recorder struct {
	registry *prometheus.Registry

	deviceToggles   *prometheus.CounterVec
	deviceOn        *prometheus.GaugeVec
	settingsUpdates *prometheus.CounterVec
	sessions        *prometheus.CounterVec
	remaining       *prometheus.GaugeVec
	progress        *prometheus.GaugeVec
}

// NewRecorder builds a Recorder on its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		deviceToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chamber_device_toggles_total",
			Help: "Total actuator toggles by chamber and actuator.",
		}, []string{"chamber", "actuator"}),
		deviceOn: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chamber_device_on",
			Help: "Actuator state (1 on, 0 off).",
		}, []string{"chamber", "actuator"}),
		settingsUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chamber_settings_updates_total",
			Help: "Total accepted settings updates by chamber.",
		}, []string{"chamber"}),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chamber_drying_sessions_total",
			Help: "Drying session transitions by chamber and outcome (started, completed, reset).",
		}, []string{"chamber", "outcome"}),
		remaining: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chamber_drying_remaining_seconds",
			Help: "Seconds left in the current drying session.",
		}, []string{"chamber"}),
		progress: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chamber_drying_progress_percent",
			Help: "Progress of the current drying session.",
		}, []string{"chamber"}),
	}

	r.registry.MustRegister(
		r.deviceToggles,
		r.deviceOn,
		r.settingsUpdates,
		r.sessions,
		r.remaining,
		r.progress,
	)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Observe updates metrics for one chamber event.
func (r *Recorder) Observe(ev models.ChamberEvent) {
	md, _ := ev.Metadata.(map[string]any)
	id := ev.ChamberID

	switch ev.Type {
	case models.EventDeviceToggled:
		actuator, _ := md["actuator"].(string)
		on, _ := md["on"].(bool)
		r.deviceToggles.WithLabelValues(id, actuator).Inc()
		r.deviceOn.WithLabelValues(id, actuator).Set(boolToFloat(on))
	case models.EventSettingsUpdated:
		r.settingsUpdates.WithLabelValues(id).Inc()
	case models.EventDryingStarted:
		r.sessions.WithLabelValues(id, "started").Inc()
		if total, ok := md["total_seconds"].(int); ok {
			r.remaining.WithLabelValues(id).Set(float64(total))
		}
		r.progress.WithLabelValues(id).Set(0)
	case models.EventDryingTick:
		if v, ok := md["remaining_seconds"].(int); ok {
			r.remaining.WithLabelValues(id).Set(float64(v))
		}
		if v, ok := md["progress_percent"].(int); ok {
			r.progress.WithLabelValues(id).Set(float64(v))
		}
	case models.EventDryingCompleted:
		r.sessions.WithLabelValues(id, "completed").Inc()
		r.remaining.WithLabelValues(id).Set(0)
		r.progress.WithLabelValues(id).Set(100)
	case models.EventDryingReset:
		r.sessions.WithLabelValues(id, "reset").Inc()
		r.remaining.WithLabelValues(id).Set(0)
		r.progress.WithLabelValues(id).Set(0)
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
