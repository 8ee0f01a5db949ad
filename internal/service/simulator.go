package service

import (
	"context"
	"time"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
)

// ----------- Simulation constants -----------
const (
	AmbientC                  = 25.0 // ambient temperature °C
	AmbientHumidityPct        = 62.0 // ambient relative humidity %
	HeaterRampCPerSec         = 0.05 // °C per second per heater switched on
	CoolDriftCPerSec          = 0.02 // °C per second toward ambient with heaters off
	DryerDryPctPerSec         = 0.08 // % per second removed by the dryer
	FanDryPctPerSec           = 0.03 // % per second removed per fan
	HumidityRecoverPctPerSec  = 0.02 // % per second toward ambient with nothing drying
	AutoTempRateCPerSec       = 0.10 // °C per second toward the setpoint in automatic mode
	AutoHumidityRatePctPerSec = 0.15 // % per second toward the setpoint in automatic mode

	MinSensorC   = 0.0
	MaxSensorC   = 80.0
	MinSensorPct = 0.0
	MaxSensorPct = 100.0
)

// SimulatorService moves the mock sensor readings of every chamber over time.
type SimulatorService struct {
	registry *chamber.Registry
}

// NewSimulatorService returns a simulator over reg.
func NewSimulatorService(reg *chamber.Registry) *SimulatorService {
	return &SimulatorService{registry: reg}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			elapsed := now.Sub(last).Seconds()
			if elapsed <= 0 {
				continue
			}
			last = now
			s.step(elapsed)
		}
	}
}

// step advances every chamber by elapsed seconds.
func (s *SimulatorService) step(elapsed float64) {
	for _, c := range s.registry.List() {
		c.AdvanceSensors(func(r *models.SensorReading, env chamber.Environment) {
			s.advance(r, env, elapsed)
		})
	}
}

// advance applies one simulation step to a single reading.
func (s *SimulatorService) advance(r *models.SensorReading, env chamber.Environment, elapsed float64) {
	if env.Automatic {
		s.holdSetpoint(r, env.Settings, elapsed)
	} else {
		if !s.handleHeat(r, env.HeatersOn(), elapsed) {
			s.driftToAmbient(r, elapsed)
		}
		if !s.handleDrying(r, env, elapsed) {
			s.recoverHumidity(r, elapsed)
		}
	}
	r.TemperatureC = clamp(r.TemperatureC, MinSensorC, MaxSensorC)
	r.HumidityPct = clamp(r.HumidityPct, MinSensorPct, MaxSensorPct)
}

// holdSetpoint moves temperature and humidity toward the desired values.
func (s *SimulatorService) holdSetpoint(r *models.SensorReading, set models.DryingSettings, elapsed float64) {
	r.TemperatureC = approach(r.TemperatureC, set.DesiredTemperature, AutoTempRateCPerSec*elapsed)
	r.HumidityPct = approach(r.HumidityPct, set.DesiredHumidity, AutoHumidityRatePctPerSec*elapsed)
}

// handleHeat raises temperature for every heater on. Returns true if any heater is on.
func (s *SimulatorService) handleHeat(r *models.SensorReading, heaters int, elapsed float64) bool {
	if heaters == 0 {
		return false
	}
	r.TemperatureC += HeaterRampCPerSec * float64(heaters) * elapsed
	return true
}

// driftToAmbient moves temperature toward ambient. Returns true if it changed.
func (s *SimulatorService) driftToAmbient(r *models.SensorReading, elapsed float64) bool {
	next := approach(r.TemperatureC, AmbientC, CoolDriftCPerSec*elapsed)
	changed := next != r.TemperatureC
	r.TemperatureC = next
	return changed
}

// handleDrying lowers humidity for the dryer and each fan. Returns true if anything is drying.
func (s *SimulatorService) handleDrying(r *models.SensorReading, env chamber.Environment, elapsed float64) bool {
	rate := FanDryPctPerSec * float64(env.FansOn())
	if env.Devices.Dryer {
		rate += DryerDryPctPerSec
	}
	if rate == 0 {
		return false
	}
	r.HumidityPct -= rate * elapsed
	return true
}

// recoverHumidity moves humidity back toward ambient.
func (s *SimulatorService) recoverHumidity(r *models.SensorReading, elapsed float64) {
	r.HumidityPct = approach(r.HumidityPct, AmbientHumidityPct, HumidityRecoverPctPerSec*elapsed)
}

// helpers

// approach moves v toward target by at most step without overshooting.
func approach(v, target, step float64) float64 {
	if v < target {
		return minFloat(v+step, target)
	}
	return maxFloat(v-step, target)
}

func clamp(v, lo, hi float64) float64 {
	return maxFloat(lo, minFloat(v, hi))
}

func maxFloat(a, b float64) float64 {
	if a >= b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a <= b {
		return a
	}
	return b
}
