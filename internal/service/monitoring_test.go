package service

import (
	"context"
	"errors"
	"testing"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
)

func TestMonitoringService_GetChamber(t *testing.T) {
	t.Parallel()

	reg := chamber.NewRegistry(nil)
	svc := NewMonitoringService(reg)

	cases := []struct {
		name       string
		id         string
		assertFunc func(t *testing.T, got models.ChamberSnapshot, err error)
	}{
		{
			name: "first chamber has only a next neighbour",
			id:   "1",
			assertFunc: func(t *testing.T, got models.ChamberSnapshot, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Name != "Chamber 1" || got.PrevID != "" || got.NextID != "2" {
					t.Fatalf("unexpected snapshot header: %+v", got)
				}
				if got.Session.Status != models.SessionIdle || got.Session.TimeDisplay != "02:00:00" {
					t.Fatalf("unexpected session: %+v", got.Session)
				}
				if len(got.Sensors) != 2 {
					t.Fatalf("expected 2 sensors, got %d", len(got.Sensors))
				}
			},
		},
		{
			name: "unknown chamber",
			id:   "99",
			assertFunc: func(t *testing.T, got models.ChamberSnapshot, err error) {
				var nf *chamber.ChamberNotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("expected ChamberNotFoundError, got %v", err)
				}
				if got.ID != "" {
					t.Errorf("expected empty snapshot, got %+v", got)
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.GetChamber(context.Background(), tc.id)
			tc.assertFunc(t, got, err)
		})
	}
}

func TestMonitoringService_ListChambers(t *testing.T) {
	t.Parallel()

	reg := chamber.NewRegistry(nil)
	c, _ := reg.Lookup("3")
	_, _ = c.ToggleDevice(models.Dryer)
	svc := NewMonitoringService(reg)

	list, err := svc.ListChambers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 chambers, got %d", len(list))
	}
	for i, want := range []string{"1", "2", "3"} {
		if list[i].ID != want {
			t.Fatalf("order: list[%d].ID=%q, want %q", i, list[i].ID, want)
		}
	}
	if !list[2].Devices.Dryer || list[2].PrevID != "2" {
		t.Fatalf("chamber 3 snapshot stale: %+v", list[2])
	}
}

func TestMonitoringService_CancelledContext(t *testing.T) {
	t.Parallel()

	svc := NewMonitoringService(chamber.NewRegistry(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GetChamber(ctx, "1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := svc.ListChambers(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
