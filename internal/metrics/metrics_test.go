package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"tobacco_drying/internal/models"
)

func TestRecorder_DeviceToggles(t *testing.T) {
	r := NewRecorder()
	r.Observe(models.ChamberEvent{ChamberID: "1", Type: models.EventDeviceToggled, Metadata: map[string]any{"actuator": "fan1", "on": true}})
	r.Observe(models.ChamberEvent{ChamberID: "1", Type: models.EventDeviceToggled, Metadata: map[string]any{"actuator": "fan1", "on": false}})

	if got := testutil.ToFloat64(r.deviceToggles.WithLabelValues("1", "fan1")); got != 2 {
		t.Fatalf("toggles=%v, want 2", got)
	}
	if got := testutil.ToFloat64(r.deviceOn.WithLabelValues("1", "fan1")); got != 0 {
		t.Fatalf("device_on=%v, want 0", got)
	}
}

func TestRecorder_SessionLifecycle(t *testing.T) {
	r := NewRecorder()
	r.Observe(models.ChamberEvent{ChamberID: "2", Type: models.EventDryingStarted, Metadata: map[string]any{"total_seconds": 7200}})
	if got := testutil.ToFloat64(r.remaining.WithLabelValues("2")); got != 7200 {
		t.Fatalf("remaining after start=%v", got)
	}

	r.Observe(models.ChamberEvent{ChamberID: "2", Type: models.EventDryingTick, Metadata: map[string]any{"remaining_seconds": 3600, "progress_percent": 50}})
	if got := testutil.ToFloat64(r.progress.WithLabelValues("2")); got != 50 {
		t.Fatalf("progress=%v, want 50", got)
	}

	r.Observe(models.ChamberEvent{ChamberID: "2", Type: models.EventDryingCompleted})
	r.Observe(models.ChamberEvent{ChamberID: "2", Type: models.EventDryingReset})

	for outcome, want := range map[string]float64{"started": 1, "completed": 1, "reset": 1} {
		if got := testutil.ToFloat64(r.sessions.WithLabelValues("2", outcome)); got != want {
			t.Fatalf("sessions{%s}=%v, want %v", outcome, got, want)
		}
	}
	if got := testutil.ToFloat64(r.remaining.WithLabelValues("2")); got != 0 {
		t.Fatalf("remaining after reset=%v", got)
	}
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.Observe(models.ChamberEvent{ChamberID: "3", Type: models.EventSettingsUpdated})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `chamber_settings_updates_total{chamber="3"} 1`) {
		t.Fatalf("metric missing from exposition:\n%s", w.Body.String())
	}
}
