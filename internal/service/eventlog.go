package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tobacco_drying/internal/models"
	"tobacco_drying/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares the journal query and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (repository.EventQuery, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return repository.EventQuery{}, errInvalidTimeRange
	}

	return repository.EventQuery{
		From:      from,
		To:        to,
		Type:      normalizeEventType(f.Type),
		ChamberID: strings.TrimSpace(f.ChamberID),
	}, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ChamberEvent, error) {
	q, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, q)
}
