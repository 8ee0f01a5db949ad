package service

import (
	"context"
	"sync"
	"time"

	"tobacco_drying/internal/chamber"
	"tobacco_drying/internal/logger"
	"tobacco_drying/internal/models"
	"tobacco_drying/internal/repository"

	"github.com/google/uuid"
)

const journalWriteTimeout = 2 * time.Second

// Broadcaster is the chamber.Observer of the running application. Each event
// is journaled (ticks excepted), passed to the extra sinks and fanned out to
// subscribers. Slow subscribers miss events rather than block chambers.
type Broadcaster struct {
	journal repository.EventRepo
	log     *logger.Logger
	sinks   []chamber.Observer

	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]chan models.ChamberEvent
}

var _ chamber.Observer = (*Broadcaster)(nil)

// NewBroadcaster builds a broadcaster. journal and log may be nil.
func NewBroadcaster(journal repository.EventRepo, log *logger.Logger, sinks ...chamber.Observer) *Broadcaster {
	return &Broadcaster{
		journal: journal,
		log:     log,
		sinks:   sinks,
		subs:    make(map[uint64]chan models.ChamberEvent),
	}
}

// Observe implements chamber.Observer.
func (b *Broadcaster) Observe(ev models.ChamberEvent) {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}

	if ev.Type != models.EventDryingTick {
		b.record(ev)
	}
	for _, s := range b.sinks {
		s.Observe(ev)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a listener. The returned cancel func closes the channel
// and is safe to call more than once.
func (b *Broadcaster) Subscribe(buffer int) (<-chan models.ChamberEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan models.ChamberEvent, buffer)

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

func (b *Broadcaster) record(ev models.ChamberEvent) {
	if b.log != nil {
		b.log.Infow("chamber_event", "chamber", ev.ChamberID, "type", ev.Type, "description", ev.Description)
	}
	if b.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalWriteTimeout)
	defer cancel()
	if err := b.journal.Append(ctx, ev); err != nil && b.log != nil {
		b.log.Errorw("journal_append_failed", "err", err, "chamber", ev.ChamberID, "type", ev.Type)
	}
}
