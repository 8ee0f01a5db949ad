package chamber

import (
	"math"

	"tobacco_drying/internal/models"
)

// Settings bounds, matching the dashboard input widgets.
const (
	MinTemperature = 15.0 // °C
	MaxTemperature = 40.0 // °C
	MinHumidity    = 30.0 // %
	MaxHumidity    = 80.0 // %
	MinDryingTime  = 30   // minutes
	MaxDryingTime  = 480  // minutes
)

// Settings field names as reported in errors and events.
const (
	FieldDesiredTemperature = "desired_temperature"
	FieldDesiredHumidity    = "desired_humidity"
	FieldDryingTime         = "drying_time"
)

// DefaultSettings are the settings every chamber starts with.
func DefaultSettings() models.DryingSettings {
	return models.DryingSettings{
		DesiredTemperature: 30,
		DesiredHumidity:    50,
		DryingTime:         120,
	}
}

// SettingsStore holds a chamber's drying settings, always within bounds.
// Out-of-range values are clamped to the nearest bound.
type SettingsStore struct {
	current models.DryingSettings
}

// NewSettingsStore returns a store seeded with initial, clamped into range.
// A non-finite initial value fails with OutOfBoundsError.
func NewSettingsStore(initial models.DryingSettings) (*SettingsStore, error) {
	s := &SettingsStore{current: DefaultSettings()}
	if _, _, err := s.Update(models.SettingsPatch{
		DesiredTemperature: &initial.DesiredTemperature,
		DesiredHumidity:    &initial.DesiredHumidity,
		DryingTime:         &initial.DryingTime,
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current settings.
func (s *SettingsStore) Get() models.DryingSettings {
	return s.current
}

// Update merges the provided fields into the current settings.
// It returns the resulting settings and the names of fields that were clamped.
// A non-finite value rejects the whole update with OutOfBoundsError.
func (s *SettingsStore) Update(p models.SettingsPatch) (models.DryingSettings, []string, error) {
	next := s.current
	var clamped []string

	if p.DesiredTemperature != nil {
		v, changed, err := clampFloat(FieldDesiredTemperature, *p.DesiredTemperature, MinTemperature, MaxTemperature)
		if err != nil {
			return s.current, nil, err
		}
		if changed {
			clamped = append(clamped, FieldDesiredTemperature)
		}
		next.DesiredTemperature = v
	}
	if p.DesiredHumidity != nil {
		v, changed, err := clampFloat(FieldDesiredHumidity, *p.DesiredHumidity, MinHumidity, MaxHumidity)
		if err != nil {
			return s.current, nil, err
		}
		if changed {
			clamped = append(clamped, FieldDesiredHumidity)
		}
		next.DesiredHumidity = v
	}
	if p.DryingTime != nil {
		v := clampInt(*p.DryingTime, MinDryingTime, MaxDryingTime)
		if v != *p.DryingTime {
			clamped = append(clamped, FieldDryingTime)
		}
		next.DryingTime = v
	}

	s.current = next
	return next, clamped, nil
}

func clampFloat(field string, v, lo, hi float64) (float64, bool, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, &OutOfBoundsError{Field: field, Value: v, Min: lo, Max: hi}
	}
	switch {
	case v < lo:
		return lo, true, nil
	case v > hi:
		return hi, true, nil
	default:
		return v, false, nil
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
