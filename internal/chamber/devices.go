package chamber

import "tobacco_drying/internal/models"

// DeviceStore holds the on/off state of a chamber's actuators.
// It is not safe for concurrent use; Chamber serializes access.
type DeviceStore struct {
	state models.DeviceState
}

// Toggle flips one actuator and returns its new value.
func (d *DeviceStore) Toggle(name models.Actuator) (bool, error) {
	p := d.slot(name)
	if p == nil {
		return false, &InvalidActuatorError{Name: string(name)}
	}
	*p = !*p
	return *p, nil
}

// Get returns the state of one actuator; unknown names read as off.
func (d *DeviceStore) Get(name models.Actuator) bool {
	if p := d.slot(name); p != nil {
		return *p
	}
	return false
}

// All returns a copy of every actuator state.
func (d *DeviceStore) All() models.DeviceState {
	return d.state
}

func (d *DeviceStore) slot(name models.Actuator) *bool {
	switch name {
	case models.Heater1:
		return &d.state.Heater1
	case models.Heater2:
		return &d.state.Heater2
	case models.Dryer:
		return &d.state.Dryer
	case models.Fan1:
		return &d.state.Fan1
	case models.Fan2:
		return &d.state.Fan2
	default:
		return nil
	}
}
