package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/models"
)

var errCountdownsClosed = errors.New("countdowns: shutting down")

// countdowns runs one ticker goroutine per active drying session.
type countdowns struct {
	tick time.Duration
	unit time.Duration
	now  func() time.Time

	root   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	seq     uint64
	running map[string]*countdown
	wg      sync.WaitGroup
}

type countdown struct {
	id     uint64
	cancel context.CancelFunc
}

func newCountdowns(tick, unit time.Duration, now func() time.Time) *countdowns {
	root, cancel := context.WithCancel(context.Background())
	return &countdowns{
		tick:    tick,
		unit:    unit,
		now:     now,
		root:    root,
		cancel:  cancel,
		running: make(map[string]*countdown),
	}
}

// start launches the tick source for c, replacing any previous one.
// It refuses once shutdown has begun.
func (m *countdowns) start(c *chamber.Chamber) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errCountdownsClosed
	}

	if prev, ok := m.running[c.ID()]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(m.root)
	m.seq++
	cd := &countdown{id: m.seq, cancel: cancel}
	m.running[c.ID()] = cd

	m.wg.Add(1)
	go m.run(ctx, c, cd)
	return nil
}

// run ticks c until its session leaves ACTIVE or ctx is cancelled.
// Units are whole m.unit periods of wall-clock time; the remainder carries over.
func (m *countdowns) run(ctx context.Context, c *chamber.Chamber, cd *countdown) {
	defer m.wg.Done()
	defer m.release(c.ID(), cd)

	t := time.NewTicker(m.tick)
	defer t.Stop()

	last := m.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			now := m.now()
			units := int(now.Sub(last) / m.unit)
			if units < 1 {
				continue
			}
			last = last.Add(time.Duration(units) * m.unit)
			status, ok := m.applyTick(ctx, c, cd, units)
			if !ok || status != models.SessionActive {
				return
			}
		}
	}
}

// applyTick applies units only while cd is live and still owns the chamber's
// slot. Holding m.mu keeps stop and start from swapping sessions mid-tick.
func (m *countdowns) applyTick(ctx context.Context, c *chamber.Chamber, cd *countdown, units int) (models.SessionStatus, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx.Err() != nil {
		return "", false
	}
	if cur, ok := m.running[c.ID()]; !ok || cur.id != cd.id {
		return "", false
	}
	return c.Tick(units), true
}

// release forgets cd unless a newer countdown already took its slot.
func (m *countdowns) release(chamberID string, cd *countdown) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.running[chamberID]; ok && cur.id == cd.id {
		delete(m.running, chamberID)
	}
	cd.cancel()
}

func (m *countdowns) stop(chamberID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cd, ok := m.running[chamberID]; ok {
		cd.cancel()
		delete(m.running, chamberID)
	}
}

func (m *countdowns) active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.running)
}

func (m *countdowns) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *countdowns) shutdown() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.cancel()
	m.wg.Wait()
}
