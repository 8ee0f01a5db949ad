package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"tobacco_drying/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var eventColumns = []string{"id", "chamber_id", "occurred_at", "type", "title", "message", "meta"}

func TestAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs(sqlmock.AnyArg(), "2", sqlmock.AnyArg(),
			"DEVICE_TOGGLED", "Fan1 activated", "Chamber 2 fan1 has been turned on.",
			`{"actuator":"fan1","on":true}`,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.ChamberEvent{
		ChamberID:   " 2 ",
		Type:        "  device_toggled ",
		Title:       "Fan1 activated",
		Description: "Chamber 2 fan1 has been turned on.",
		Metadata:    map[string]any{"actuator": "fan1", "on": true},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAppend_FormatsTimestampInUTC(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	at := time.Date(2025, 9, 1, 12, 30, 15, 250_000_000, time.FixedZone("UTC+3", 3*3600))
	mock.ExpectExec("INSERT INTO chamber_events").
		WithArgs("e1", "1", "2025-09-01 09:30:15.250", "DRYING_RESET", "", "reset", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.ChamberEvent{
		EventID:     "e1",
		ChamberID:   "1",
		OccurredAt:  at,
		Type:        models.EventDryingReset,
		Description: "reset",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestAppend_DBError(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	mock.ExpectExec("INSERT INTO chamber_events").
		WillReturnError(errors.New("down"))

	err := repo.Append(ctx(t), models.ChamberEvent{ChamberID: "1", Type: "x", Description: "x"})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestList_NoFilters_And_MetadataParsing(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	rows := sqlmock.NewRows(eventColumns).
		AddRow("e1", "1", "2025-01-01 10:00:00.000", "DRYING_STARTED", "Started", "start", `{"total_seconds":7200}`).
		AddRow("e2", "1", "2025-01-01 10:00:01.500", "DRYING_RESET", "", "reset", "{not json").
		AddRow("e3", "2", "2025-01-01 10:00:02.000", "SETTINGS_UPDATED", "", "saved", nil)

	mock.ExpectQuery(regexp.QuoteMeta(selectEventsSQL + " ORDER BY occurred_at ASC, rowid ASC")).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), EventQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	md, ok := got[0].Metadata.(map[string]any)
	if !ok || md["total_seconds"] != float64(7200) {
		t.Fatalf("metadata not parsed: %#v", got[0].Metadata)
	}
	if got[1].Metadata != "{not json" {
		t.Fatalf("malformed metadata should be kept raw, got %#v", got[1].Metadata)
	}
	if got[2].Metadata != nil {
		t.Fatalf("expected nil metadata, got %#v", got[2].Metadata)
	}
	want := time.Date(2025, 1, 1, 10, 0, 1, 500_000_000, time.UTC)
	if !got[1].OccurredAt.Equal(want) || got[1].OccurredAt.Location() != time.UTC {
		t.Fatalf("occurred_at=%v, want %v", got[1].OccurredAt, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestList_AllFilters(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectEventsSQL +
		" WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? AND chamber_id = ?" +
		" ORDER BY occurred_at ASC, rowid ASC")).
		WithArgs("2025-01-01 00:00:00.000", "2025-01-02 00:00:00.000", "DEVICE_TOGGLED", "3").
		WillReturnRows(sqlmock.NewRows(eventColumns))

	got, err := repo.List(ctx(t), EventQuery{From: from, To: to, Type: " device_toggled", ChamberID: "3"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestList_BadTimestamp(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	mock.ExpectQuery("SELECT id, chamber_id").
		WillReturnRows(sqlmock.NewRows(eventColumns).AddRow("e1", "1", "yesterday", "X", "", "x", nil))

	if _, err := repo.List(ctx(t), EventQuery{}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestList_QueryError(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	mock.ExpectQuery("SELECT id, chamber_id").WillReturnError(errors.New("locked"))

	_, err := repo.List(ctx(t), EventQuery{})
	if err == nil || !strings.Contains(err.Error(), "locked") {
		t.Fatalf("expected query error, got %v", err)
	}
}
