package service

import (
	"context"
	"time"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
	"tobacco_drying/internal/repository"
)

// Control exposes the chamber mutators.
type Control interface {
	ToggleDevice(ctx context.Context, chamberID string, name models.Actuator) (bool, error)
	UpdateSettings(ctx context.Context, chamberID string, p models.SettingsPatch) (models.DryingSettings, error)
	StartDrying(ctx context.Context, chamberID string) (models.DryingSession, error)
	ResetDrying(ctx context.Context, chamberID string) (models.DryingSession, error)
	// Shutdown stops every running countdown and waits for it to exit.
	Shutdown()
}

// Monitoring exposes read-only chamber snapshots.
type Monitoring interface {
	GetChamber(ctx context.Context, chamberID string) (models.ChamberSnapshot, error)
	ListChambers(ctx context.Context) ([]models.ChamberSnapshot, error)
}

// EventLog exposes the journal of chamber events with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ChamberEvent, error)
}

// Simulator runs the background loop that moves the mock sensor readings.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Events is the change-notification subscription point for presentation layers.
type Events interface {
	Subscribe(buffer int) (<-chan models.ChamberEvent, func())
}

// Service aggregates all sub-services.
type Service struct {
	Control
	Monitoring
	EventLog
	Simulator
	Events
}

// NewService wires the registry, repositories and broadcaster into concrete services.
// bus must be the observer the registry was created with.
func NewService(reg *chamber.Registry, repos *repository.Repository, bus *Broadcaster, opts Options) *Service {
	return &Service{
		Control:    NewControlService(reg, opts),
		Monitoring: NewMonitoringService(reg),
		EventLog:   NewEventLogService(repos.EventRepo),
		Simulator:  NewSimulatorService(reg),
		Events:     bus,
	}
}
