// Package chamber holds the in-memory state core of the drying chambers:
// actuator states, drying settings, the automatic drying session and mock sensors.
// It performs no I/O; changes are reported to an Observer.
package chamber

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tobacco_drying/internal/models"
)

// Observer receives chamber events after the producing mutation is applied.
type Observer interface {
	Observe(ev models.ChamberEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev models.ChamberEvent)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev models.ChamberEvent) { f(ev) }

// Chamber is one drying enclosure. All methods are safe for concurrent use;
// mutations on the same chamber never interleave, and their events reach the
// observer in mutation order. Reads do not wait for delivery; the observer
// may read the chamber but must not mutate it.
type Chamber struct {
	id   string
	name string

	mu       sync.Mutex
	emitMu   sync.Mutex // held by a mutation until its events are delivered
	devices  DeviceStore
	settings *SettingsStore
	session  *Session
	sensors  []models.SensorReading

	observer Observer
	now      func() time.Time
}

func newChamber(id string, sensors []models.SensorReading, observer Observer, now func() time.Time) *Chamber {
	return &Chamber{
		id:       id,
		name:     "Chamber " + id,
		settings: &SettingsStore{current: DefaultSettings()},
		session:  newSession(id),
		sensors:  sensors,
		observer: observer,
		now:      now,
	}
}

// ID returns the chamber identifier.
func (c *Chamber) ID() string { return c.id }

// Name returns the display name.
func (c *Chamber) Name() string { return c.name }

// ToggleDevice flips one actuator. Toggles are allowed during automatic drying.
func (c *Chamber) ToggleDevice(name models.Actuator) (bool, error) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	on, err := c.devices.Toggle(name)
	c.mu.Unlock()
	if err != nil {
		return false, err
	}

	label := cases.Title(language.English).String(string(name))
	verb, state := "deactivated", "off"
	if on {
		verb, state = "activated", "on"
	}
	c.emit(models.ChamberEvent{
		Type:        models.EventDeviceToggled,
		Title:       label + " " + verb,
		Description: fmt.Sprintf("%s %s has been turned %s.", c.name, name, state),
		Metadata:    map[string]any{"actuator": string(name), "on": on},
	})
	return on, nil
}

// UpdateSettings merges p into the settings unless a session is active.
func (c *Chamber) UpdateSettings(p models.SettingsPatch) (models.DryingSettings, error) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	if c.session.Status() == models.SessionActive {
		c.mu.Unlock()
		return models.DryingSettings{}, &SessionActiveError{ChamberID: c.id}
	}
	next, clamped, err := c.settings.Update(p)
	c.mu.Unlock()
	if err != nil {
		return models.DryingSettings{}, err
	}

	md := map[string]any{
		FieldDesiredTemperature: next.DesiredTemperature,
		FieldDesiredHumidity:    next.DesiredHumidity,
		FieldDryingTime:         next.DryingTime,
	}
	if len(clamped) > 0 {
		md["clamped"] = clamped
	}
	c.emit(models.ChamberEvent{
		Type:        models.EventSettingsUpdated,
		Title:       "Settings Saved",
		Description: c.name + " automatic control settings have been updated.",
		Metadata:    md,
	})
	return next, nil
}

// StartDrying snapshots the current settings and starts the countdown.
func (c *Chamber) StartDrying() (models.DryingSession, error) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	settings := c.settings.Get()
	if err := c.session.Start(settings, c.now()); err != nil {
		c.mu.Unlock()
		return models.DryingSession{}, err
	}
	view := c.session.View(settings)
	c.mu.Unlock()

	c.emit(models.ChamberEvent{
		Type:        models.EventDryingStarted,
		Title:       "Automatic Drying Started",
		Description: c.name + " automatic drying process has been initiated.",
		Metadata: map[string]any{
			"total_seconds":         *view.TotalSeconds,
			FieldDesiredTemperature: settings.DesiredTemperature,
			FieldDesiredHumidity:    settings.DesiredHumidity,
		},
	})
	return view, nil
}

// Tick advances an active session by units seconds and returns the status
// afterwards. Nothing is emitted when the tick changes nothing.
func (c *Chamber) Tick(units int) models.SessionStatus {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	before := c.session.Remaining()
	completed := c.session.Tick(units)
	status := c.session.Status()
	remaining := c.session.Remaining()
	progress := c.session.Progress()
	c.mu.Unlock()

	if remaining == before && !completed {
		return status
	}

	c.emit(models.ChamberEvent{
		Type:        models.EventDryingTick,
		Description: "Remaining " + FormatHMS(remaining),
		Metadata: map[string]any{
			"remaining_seconds": remaining,
			"progress_percent":  progress,
		},
	})
	if completed {
		c.emit(models.ChamberEvent{
			Type:        models.EventDryingCompleted,
			Title:       "Automatic Drying Completed",
			Description: c.name + " automatic drying process has finished.",
		})
	}
	return status
}

// ResetDrying returns the session to IDLE from any state.
func (c *Chamber) ResetDrying() models.DryingSession {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	from := c.session.Status()
	c.session.Reset()
	view := c.session.View(c.settings.Get())
	c.mu.Unlock()

	c.emit(models.ChamberEvent{
		Type:        models.EventDryingReset,
		Title:       "Automatic Drying Reset",
		Description: c.name + " drying session has been reset.",
		Metadata:    map[string]any{"from": string(from)},
	})
	return view
}

// Devices returns the actuator states.
func (c *Chamber) Devices() models.DeviceState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.devices.All()
}

// Settings returns the drying settings.
func (c *Chamber) Settings() models.DryingSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.Get()
}

// Session returns the session read model.
func (c *Chamber) Session() models.DryingSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.View(c.settings.Get())
}

// Sensors returns a copy of the mock sensor readings.
func (c *Chamber) Sensors() []models.SensorReading {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.SensorReading(nil), c.sensors...)
}

// AdvanceSensors applies step to every sensor under the chamber lock and
// reclassifies the readings. step must not call back into the chamber.
func (c *Chamber) AdvanceSensors(step func(r *models.SensorReading, env Environment)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	env := Environment{
		Devices:   c.devices.All(),
		Settings:  c.settings.Get(),
		Automatic: c.session.Status() == models.SessionActive,
	}
	for i := range c.sensors {
		step(&c.sensors[i], env)
		classify(&c.sensors[i])
	}
}

// Snapshot returns a consistent view of the chamber. Neighbour ids are
// filled in by the Registry.
func (c *Chamber) Snapshot() models.ChamberSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	settings := c.settings.Get()
	return models.ChamberSnapshot{
		ID:       c.id,
		Name:     c.name,
		Sensors:  append([]models.SensorReading(nil), c.sensors...),
		Devices:  c.devices.All(),
		Settings: settings,
		Session:  c.session.View(settings),
	}
}

func (c *Chamber) emit(ev models.ChamberEvent) {
	if c.observer == nil {
		return
	}
	ev.ChamberID = c.id
	ev.OccurredAt = c.now().UTC()
	c.observer.Observe(ev)
}
