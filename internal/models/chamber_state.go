package models

import "time"

// Actuator names a binary-state device inside a chamber.
type Actuator string

const (
	Heater1 Actuator = "heater1"
	Heater2 Actuator = "heater2"
	Dryer   Actuator = "dryer"
	Fan1    Actuator = "fan1"
	Fan2    Actuator = "fan2"
)

// AllActuators returns every actuator in display order.
func AllActuators() []Actuator {
	return []Actuator{Heater1, Heater2, Dryer, Fan1, Fan2}
}

// DeviceState is the on/off state of the five actuators of a chamber.
type DeviceState struct {
	Heater1 bool `json:"heater1"`
	Heater2 bool `json:"heater2"`
	Dryer   bool `json:"dryer"`
	Fan1    bool `json:"fan1"`
	Fan2    bool `json:"fan2"`
}

// DryingSettings are the automatic-mode parameters of a chamber.
type DryingSettings struct {
	DesiredTemperature float64 `json:"desired_temperature"` // °C
	DesiredHumidity    float64 `json:"desired_humidity"`    // %
	DryingTime         int     `json:"drying_time"`         // minutes
}

// SettingsPatch is a partial settings update; nil fields stay unchanged.
type SettingsPatch struct {
	DesiredTemperature *float64 `json:"desired_temperature,omitempty"`
	DesiredHumidity    *float64 `json:"desired_humidity,omitempty"`
	DryingTime         *int     `json:"drying_time,omitempty"`
}

// SessionStatus is the state of an automatic drying session.
type SessionStatus string

const (
	SessionIdle      SessionStatus = "IDLE"
	SessionActive    SessionStatus = "ACTIVE"
	SessionCompleted SessionStatus = "COMPLETED"
)

// DryingSession is the read model of a drying session, derived values included.
type DryingSession struct {
	Status           SessionStatus `json:"status"`
	StartedAt        *time.Time    `json:"started_at,omitempty"`
	TotalSeconds     *int          `json:"total_seconds,omitempty"`
	RemainingSeconds *int          `json:"remaining_seconds,omitempty"`
	ElapsedSeconds   int           `json:"elapsed_seconds"`
	ProgressPercent  int           `json:"progress_percent"`
	TimeDisplay      string        `json:"time_display"` // HH:MM:SS
}

// SensorReading is one mock temperature/humidity sensor.
type SensorReading struct {
	ID               string  `json:"id"`
	TemperatureC     float64 `json:"temperature_c"`
	HumidityPct      float64 `json:"humidity_pct"`
	TemperatureLevel string  `json:"temperature_level"` // COLD | NORMAL | HOT
	HumidityLevel    string  `json:"humidity_level"`    // DRY | NORMAL | HUMID
}

// ChamberSnapshot is a consistent view of one chamber.
type ChamberSnapshot struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	PrevID   string          `json:"prev_id,omitempty"`
	NextID   string          `json:"next_id,omitempty"`
	Sensors  []SensorReading `json:"sensors"`
	Devices  DeviceState     `json:"devices"`
	Settings DryingSettings  `json:"settings"`
	Session  DryingSession   `json:"session"`
}
