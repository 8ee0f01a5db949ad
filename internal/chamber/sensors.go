package chamber

import "tobacco_drying/internal/models"

// Display bands for mock sensor readings.
const (
	ColdBelowC    = 20.0
	HotAboveC     = 30.0
	DryBelowPct   = 40.0
	HumidAbovePct = 70.0
)

// Sensor levels.
const (
	LevelCold   = "COLD"
	LevelHot    = "HOT"
	LevelDry    = "DRY"
	LevelHumid  = "HUMID"
	LevelNormal = "NORMAL"
)

// TemperatureLevel classifies a temperature reading.
func TemperatureLevel(c float64) string {
	switch {
	case c < ColdBelowC:
		return LevelCold
	case c > HotAboveC:
		return LevelHot
	default:
		return LevelNormal
	}
}

// HumidityLevel classifies a humidity reading.
func HumidityLevel(pct float64) string {
	switch {
	case pct < DryBelowPct:
		return LevelDry
	case pct > HumidAbovePct:
		return LevelHumid
	default:
		return LevelNormal
	}
}

func classify(r *models.SensorReading) {
	r.TemperatureLevel = TemperatureLevel(r.TemperatureC)
	r.HumidityLevel = HumidityLevel(r.HumidityPct)
}

func newReading(id string, tempC, humidityPct float64) models.SensorReading {
	r := models.SensorReading{ID: id, TemperatureC: tempC, HumidityPct: humidityPct}
	classify(&r)
	return r
}

// Environment is what a sensor simulation step may depend on.
type Environment struct {
	Devices   models.DeviceState
	Settings  models.DryingSettings
	Automatic bool // drying session active
}

// HeatersOn counts the heaters that are switched on.
func (e Environment) HeatersOn() int {
	n := 0
	if e.Devices.Heater1 {
		n++
	}
	if e.Devices.Heater2 {
		n++
	}
	return n
}

// FansOn counts the fans that are switched on.
func (e Environment) FansOn() int {
	n := 0
	if e.Devices.Fan1 {
		n++
	}
	if e.Devices.Fan2 {
		n++
	}
	return n
}
