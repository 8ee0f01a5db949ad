package chamber

import (
	"errors"
	"fmt"
)

// Error kinds, stable strings the presentation layer can switch on.
const (
	KindInvalidActuator  = "invalid_actuator"
	KindOutOfBounds      = "out_of_bounds"
	KindSessionActive    = "session_active"
	KindAlreadyActive    = "already_active"
	KindSessionCompleted = "session_completed"
	KindChamberNotFound  = "chamber_not_found"
)

// InvalidActuatorError reports a device name outside the fixed actuator set.
type InvalidActuatorError struct {
	Name string
}

func (e *InvalidActuatorError) Error() string {
	return fmt.Sprintf("invalid actuator %q: must be one of heater1, heater2, dryer, fan1, fan2", e.Name)
}

func (e *InvalidActuatorError) Kind() string { return KindInvalidActuator }

// OutOfBoundsError reports a settings value that cannot be brought into range.
type OutOfBoundsError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s=%v is outside [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

func (e *OutOfBoundsError) Kind() string { return KindOutOfBounds }

// SessionActiveError is returned when settings change while automatic drying runs.
type SessionActiveError struct {
	ChamberID string
}

func (e *SessionActiveError) Error() string {
	return fmt.Sprintf("chamber %s: settings are locked while automatic drying is active", e.ChamberID)
}

func (e *SessionActiveError) Kind() string { return KindSessionActive }

// AlreadyActiveError is returned when starting a session that is already running.
type AlreadyActiveError struct {
	ChamberID string
}

func (e *AlreadyActiveError) Error() string {
	return fmt.Sprintf("chamber %s: automatic drying is already active", e.ChamberID)
}

func (e *AlreadyActiveError) Kind() string { return KindAlreadyActive }

// SessionCompletedError is returned when starting a finished session without a reset.
type SessionCompletedError struct {
	ChamberID string
}

func (e *SessionCompletedError) Error() string {
	return fmt.Sprintf("chamber %s: drying session is completed, reset it first", e.ChamberID)
}

func (e *SessionCompletedError) Kind() string { return KindSessionCompleted }

// ChamberNotFoundError reports an unknown chamber identifier.
type ChamberNotFoundError struct {
	ID string
}

func (e *ChamberNotFoundError) Error() string {
	return fmt.Sprintf("chamber %q not found", e.ID)
}

func (e *ChamberNotFoundError) Kind() string { return KindChamberNotFound }

// KindOf returns the kind of a chamber error anywhere in err's chain, or "".
func KindOf(err error) string {
	var k interface{ Kind() string }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}
