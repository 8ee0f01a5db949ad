package service

import (
	"context"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
)

// ControlService applies mutations to chambers and owns the countdown tick sources.
type ControlService struct {
	registry   *chamber.Registry
	countdowns *countdowns
}

func NewControlService(reg *chamber.Registry, opts Options) *ControlService {
	opts = opts.withDefaults()
	return &ControlService{
		registry:   reg,
		countdowns: newCountdowns(opts.CountdownTick, opts.CountdownUnit, opts.Now),
	}
}

// ToggleDevice flips one actuator of a chamber and returns its new state.
func (s *ControlService) ToggleDevice(ctx context.Context, chamberID string, name models.Actuator) (bool, error) {
	c, err := s.lookup(ctx, chamberID)
	if err != nil {
		return false, err
	}
	return c.ToggleDevice(name)
}

// UpdateSettings merges p into the chamber settings (clamped to bounds).
// Rejected with chamber.SessionActiveError while automatic drying runs.
func (s *ControlService) UpdateSettings(ctx context.Context, chamberID string, p models.SettingsPatch) (models.DryingSettings, error) {
	c, err := s.lookup(ctx, chamberID)
	if err != nil {
		return models.DryingSettings{}, err
	}
	return c.UpdateSettings(p)
}

// StartDrying starts the automatic session and its countdown.
func (s *ControlService) StartDrying(ctx context.Context, chamberID string) (models.DryingSession, error) {
	c, err := s.lookup(ctx, chamberID)
	if err != nil {
		return models.DryingSession{}, err
	}
	if s.countdowns.isClosed() {
		return models.DryingSession{}, errCountdownsClosed
	}
	view, err := c.StartDrying()
	if err != nil {
		return models.DryingSession{}, err
	}
	if err := s.countdowns.start(c); err != nil {
		// shutdown won the race; leave no session without a tick source
		c.ResetDrying()
		return models.DryingSession{}, err
	}
	return view, nil
}

// ResetDrying cancels any countdown and returns the session to IDLE.
func (s *ControlService) ResetDrying(ctx context.Context, chamberID string) (models.DryingSession, error) {
	c, err := s.lookup(ctx, chamberID)
	if err != nil {
		return models.DryingSession{}, err
	}
	s.countdowns.stop(c.ID())
	return c.ResetDrying(), nil
}

// Shutdown stops all countdowns.
func (s *ControlService) Shutdown() {
	s.countdowns.shutdown()
}

func (s *ControlService) lookup(ctx context.Context, chamberID string) (*chamber.Chamber, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.registry.Lookup(chamberID)
}
