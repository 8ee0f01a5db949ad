package handlers

import (
	"context"
	"sync"
	"time"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
	"tobacco_drying/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockControl struct {
	toggleOn  bool
	toggleErr error
	settings  models.DryingSettings
	updateErr error
	session   models.DryingSession
	startErr  error
	resetErr  error

	lastChamber  string
	lastActuator models.Actuator
	lastPatch    models.SettingsPatch
	toggleCalls  int
	updateCalls  int
	startCalls   int
	resetCalls   int
}

func (m *mockControl) ToggleDevice(ctx context.Context, id string, name models.Actuator) (bool, error) {
	m.toggleCalls++
	m.lastChamber = id
	m.lastActuator = name
	return m.toggleOn, m.toggleErr
}
func (m *mockControl) UpdateSettings(ctx context.Context, id string, p models.SettingsPatch) (models.DryingSettings, error) {
	m.updateCalls++
	m.lastChamber = id
	m.lastPatch = p
	return m.settings, m.updateErr
}
func (m *mockControl) StartDrying(ctx context.Context, id string) (models.DryingSession, error) {
	m.startCalls++
	m.lastChamber = id
	return m.session, m.startErr
}
func (m *mockControl) ResetDrying(ctx context.Context, id string) (models.DryingSession, error) {
	m.resetCalls++
	m.lastChamber = id
	return m.session, m.resetErr
}
func (m *mockControl) Shutdown() {}

type mockMonitoring struct {
	snapshots map[string]models.ChamberSnapshot
	err       error
}

func (m *mockMonitoring) GetChamber(ctx context.Context, id string) (models.ChamberSnapshot, error) {
	if m.err != nil {
		return models.ChamberSnapshot{}, m.err
	}
	snap, ok := m.snapshots[id]
	if !ok {
		return models.ChamberSnapshot{}, chamberNotFound(id)
	}
	return snap, nil
}

func (m *mockMonitoring) ListChambers(ctx context.Context) ([]models.ChamberSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.ChamberSnapshot, 0, len(m.snapshots))
	for _, id := range []string{"1", "2", "3"} {
		if snap, ok := m.snapshots[id]; ok {
			out = append(out, snap)
		}
	}
	return out, nil
}

type mockEventLog struct {
	resp        []models.ChamberEvent
	err         error
	lastFrom    time.Time
	lastTo      time.Time
	lastType    string
	lastChamber string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ChamberEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	m.lastChamber = f.ChamberID
	return m.resp, m.err
}

// mockEvents hands out one shared channel; tests push events into it.
type mockEvents struct {
	ch chan models.ChamberEvent

	mu         sync.Mutex
	subscribed chan struct{}
	cancelled  bool
}

func newMockEvents() *mockEvents {
	return &mockEvents{
		ch:         make(chan models.ChamberEvent, 16),
		subscribed: make(chan struct{}),
	}
}

func (m *mockEvents) Subscribe(buffer int) (<-chan models.ChamberEvent, func()) {
	close(m.subscribed)
	return m.ch, func() {
		m.mu.Lock()
		m.cancelled = true
		m.mu.Unlock()
	}
}

func (m *mockEvents) wasCancelled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelled
}

// ---- Shared Test Helpers ----

func chamberNotFound(id string) error {
	return &chamber.ChamberNotFoundError{ID: id}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func testSnapshot(id string) models.ChamberSnapshot {
	remaining := 3600
	total := 7200
	return models.ChamberSnapshot{
		ID:   id,
		Name: "Chamber " + id,
		Sensors: []models.SensorReading{
			{ID: "sensor1", TemperatureC: 25.5, HumidityPct: 65, TemperatureLevel: "NORMAL", HumidityLevel: "NORMAL"},
		},
		Devices:  models.DeviceState{Heater1: true},
		Settings: models.DryingSettings{DesiredTemperature: 30, DesiredHumidity: 50, DryingTime: 120},
		Session: models.DryingSession{
			Status:           models.SessionActive,
			TotalSeconds:     &total,
			RemainingSeconds: &remaining,
			ElapsedSeconds:   3600,
			ProgressPercent:  50,
			TimeDisplay:      "01:00:00",
		},
	}
}
