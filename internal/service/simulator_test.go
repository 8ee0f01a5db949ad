package service

import (
	"context"
	"math"
	"testing"
	"time"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDriftToAmbient_CoolsTowardAmbientAndClamps(t *testing.T) {
	svc := NewSimulatorService(chamber.NewRegistry(nil))

	r := models.SensorReading{TemperatureC: AmbientC + 10}
	if !svc.driftToAmbient(&r, 10) {
		t.Fatalf("expected change when above ambient")
	}
	want := AmbientC + 10 - CoolDriftCPerSec*10
	if !almostEqual(r.TemperatureC, want) {
		t.Fatalf("got %.4f, want %.4f", r.TemperatureC, want)
	}

	r = models.SensorReading{TemperatureC: AmbientC + 0.1}
	_ = svc.driftToAmbient(&r, 100)
	if r.TemperatureC != AmbientC {
		t.Fatalf("expected clamp to AmbientC, got %.4f", r.TemperatureC)
	}

	r = models.SensorReading{TemperatureC: AmbientC - 1}
	_ = svc.driftToAmbient(&r, 10)
	if !almostEqual(r.TemperatureC, AmbientC-1+CoolDriftCPerSec*10) {
		t.Fatalf("expected warming toward ambient, got %.4f", r.TemperatureC)
	}

	r = models.SensorReading{TemperatureC: AmbientC}
	if svc.driftToAmbient(&r, 5) {
		t.Fatalf("did not expect change at ambient")
	}
}

func TestHandleHeat_ScalesWithHeaters(t *testing.T) {
	svc := NewSimulatorService(chamber.NewRegistry(nil))

	r := models.SensorReading{TemperatureC: 25}
	if svc.handleHeat(&r, 0, 10) {
		t.Fatalf("no heaters should report false")
	}
	if r.TemperatureC != 25 {
		t.Fatalf("temperature changed without heaters: %.4f", r.TemperatureC)
	}

	_ = svc.handleHeat(&r, 2, 10)
	if want := 25 + HeaterRampCPerSec*2*10; !almostEqual(r.TemperatureC, want) {
		t.Fatalf("got %.4f, want %.4f", r.TemperatureC, want)
	}
}

func TestHandleDrying_DryerAndFans(t *testing.T) {
	svc := NewSimulatorService(chamber.NewRegistry(nil))

	env := chamber.Environment{Devices: models.DeviceState{Dryer: true, Fan1: true, Fan2: true}}
	r := models.SensorReading{HumidityPct: 60}
	if !svc.handleDrying(&r, env, 10) {
		t.Fatalf("expected drying")
	}
	want := 60 - (DryerDryPctPerSec+2*FanDryPctPerSec)*10
	if !almostEqual(r.HumidityPct, want) {
		t.Fatalf("got %.4f, want %.4f", r.HumidityPct, want)
	}

	r = models.SensorReading{HumidityPct: 50}
	if svc.handleDrying(&r, chamber.Environment{}, 10) {
		t.Fatalf("nothing on should not dry")
	}
	svc.recoverHumidity(&r, 10)
	if !almostEqual(r.HumidityPct, 50+HumidityRecoverPctPerSec*10) {
		t.Fatalf("expected recovery toward ambient, got %.4f", r.HumidityPct)
	}
}

func TestAdvance_AutomaticHoldsSetpoint(t *testing.T) {
	svc := NewSimulatorService(chamber.NewRegistry(nil))
	env := chamber.Environment{
		Settings:  models.DryingSettings{DesiredTemperature: 30, DesiredHumidity: 50, DryingTime: 120},
		Automatic: true,
		Devices:   models.DeviceState{Heater1: true, Heater2: true},
	}

	r := models.SensorReading{TemperatureC: 25, HumidityPct: 65}
	svc.advance(&r, env, 10)
	if !almostEqual(r.TemperatureC, 25+AutoTempRateCPerSec*10) {
		t.Fatalf("temperature should approach setpoint, got %.4f", r.TemperatureC)
	}
	if !almostEqual(r.HumidityPct, 65-AutoHumidityRatePctPerSec*10) {
		t.Fatalf("humidity should approach setpoint, got %.4f", r.HumidityPct)
	}

	svc.advance(&r, env, 1000)
	if r.TemperatureC != 30 || r.HumidityPct != 50 {
		t.Fatalf("expected to settle on setpoint, got %.2f/%.2f", r.TemperatureC, r.HumidityPct)
	}
}

func TestAdvance_ClampsToPhysicalRange(t *testing.T) {
	svc := NewSimulatorService(chamber.NewRegistry(nil))
	env := chamber.Environment{Devices: models.DeviceState{Heater1: true, Heater2: true, Dryer: true}}

	r := models.SensorReading{TemperatureC: 79, HumidityPct: 1}
	svc.advance(&r, env, 1000)
	if r.TemperatureC != MaxSensorC || r.HumidityPct != MinSensorPct {
		t.Fatalf("expected clamp, got %.2f/%.2f", r.TemperatureC, r.HumidityPct)
	}
}

func TestStep_UpdatesRegistryAndLevels(t *testing.T) {
	reg := chamber.NewRegistry(nil)
	c, _ := reg.Lookup("1")
	_, _ = c.ToggleDevice(models.Heater1)
	_, _ = c.ToggleDevice(models.Heater2)
	svc := NewSimulatorService(reg)

	svc.step(100) // +10°C on both sensors of chamber 1

	s := c.Sensors()
	if !almostEqual(s[0].TemperatureC, 35.5) {
		t.Fatalf("sensor1 temp=%.4f, want 35.5", s[0].TemperatureC)
	}
	if s[0].TemperatureLevel != chamber.LevelHot {
		t.Fatalf("expected HOT level, got %s", s[0].TemperatureLevel)
	}

	other, _ := reg.Lookup("2")
	if got := other.Sensors()[0].TemperatureC; !almostEqual(got, 25) {
		t.Fatalf("chamber 2 should drift to ambient, got %.4f", got)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	svc := NewSimulatorService(chamber.NewRegistry(nil))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
