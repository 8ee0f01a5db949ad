package chamber

import (
	"strings"
	"time"

	"tobacco_drying/internal/models"
)

type seed struct {
	id      string
	sensors [2][2]float64 // {temp °C, humidity %} per sensor
}

// The fixed chamber set with the dashboard's mock readings.
var seeds = []seed{
	{id: "1", sensors: [2][2]float64{{25.5, 65}, {26.0, 63}}},
	{id: "2", sensors: [2][2]float64{{27.0, 60}, {27.5, 58}}},
	{id: "3", sensors: [2][2]float64{{26.2, 62}, {26.7, 60}}},
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for session start times and event timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Registry is the fixed collection of chambers. It is created once by the
// composition root and passed by reference; chambers are never removed.
type Registry struct {
	order    []string
	chambers map[string]*Chamber
}

// NewRegistry builds chambers "1", "2" and "3" with default settings and all
// devices off. observer may be nil.
func NewRegistry(observer Observer, opts ...Option) *Registry {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{chambers: make(map[string]*Chamber, len(seeds))}
	for _, s := range seeds {
		sensors := []models.SensorReading{
			newReading("sensor1", s.sensors[0][0], s.sensors[0][1]),
			newReading("sensor2", s.sensors[1][0], s.sensors[1][1]),
		}
		r.order = append(r.order, s.id)
		r.chambers[s.id] = newChamber(s.id, sensors, observer, o.now)
	}
	return r
}

// Lookup returns the chamber with the given id.
func (r *Registry) Lookup(id string) (*Chamber, error) {
	c, ok := r.chambers[strings.TrimSpace(id)]
	if !ok {
		return nil, &ChamberNotFoundError{ID: id}
	}
	return c, nil
}

// List returns every chamber in id order.
func (r *Registry) List() []*Chamber {
	out := make([]*Chamber, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.chambers[id])
	}
	return out
}

// Neighbors returns the ids before and after id; "" marks an edge.
func (r *Registry) Neighbors(id string) (prev, next string, err error) {
	id = strings.TrimSpace(id)
	for i, cur := range r.order {
		if cur != id {
			continue
		}
		if i > 0 {
			prev = r.order[i-1]
		}
		if i < len(r.order)-1 {
			next = r.order[i+1]
		}
		return prev, next, nil
	}
	return "", "", &ChamberNotFoundError{ID: id}
}

// Snapshot returns the chamber view with neighbour ids filled in.
func (r *Registry) Snapshot(id string) (models.ChamberSnapshot, error) {
	c, err := r.Lookup(id)
	if err != nil {
		return models.ChamberSnapshot{}, err
	}
	snap := c.Snapshot()
	snap.PrevID, snap.NextID, _ = r.Neighbors(c.ID())
	return snap, nil
}
