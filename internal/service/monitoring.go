package service

import (
	"context"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
)

type MonitoringService struct {
	registry *chamber.Registry
}

func NewMonitoringService(reg *chamber.Registry) *MonitoringService {
	return &MonitoringService{registry: reg}
}

// GetChamber returns a snapshot of one chamber, neighbour ids included.
func (s *MonitoringService) GetChamber(ctx context.Context, chamberID string) (models.ChamberSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.ChamberSnapshot{}, err
	}
	return s.registry.Snapshot(chamberID)
}

// ListChambers returns snapshots of every chamber in id order.
func (s *MonitoringService) ListChambers(ctx context.Context) ([]models.ChamberSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	chambers := s.registry.List()
	out := make([]models.ChamberSnapshot, 0, len(chambers))
	for _, c := range chambers {
		snap, err := s.registry.Snapshot(c.ID())
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}
