package repository

import (
	"context"
	"database/sql"
	"time"

	"tobacco_drying/internal/models"
)

// EventQuery filters the event journal. Zero values mean "no bound".
type EventQuery struct {
	From      time.Time
	To        time.Time
	Type      string
	ChamberID string
}

type EventRepo interface {
	Append(ctx context.Context, e models.ChamberEvent) error
	List(ctx context.Context, q EventQuery) ([]models.ChamberEvent, error)
}

type Repository struct {
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
	}
}
