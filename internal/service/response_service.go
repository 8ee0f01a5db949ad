package service

import "time"

// Options tunes the countdown tick source.
type Options struct {
	// CountdownTick is how often a running session is checked; default 1s.
	CountdownTick time.Duration
	// CountdownUnit is the wall-clock length of one countdown unit; default 1s.
	CountdownUnit time.Duration
	// Now overrides the wall clock; default time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.CountdownTick <= 0 {
		o.CountdownTick = time.Second
	}
	if o.CountdownUnit <= 0 {
		o.CountdownUnit = time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// LogFilter supports history filtering by time range, type and chamber.
type LogFilter struct {
	From      time.Time // inclusive; zero means no lower bound
	To        time.Time // inclusive; zero means no upper bound
	Type      string    // "", "DEVICE_TOGGLED", "SETTINGS_UPDATED", "DRYING_STARTED", ...
	ChamberID string    // "" means every chamber
}
