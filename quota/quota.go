// Package quota limits each user to one reading per topic per calendar day.
package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"tarot-telegram-bot/storage"
)

// DayLayout is the stored day format.
const DayLayout = "2006-01-02"

var midnight = mustParse("0 0 * * *")

func mustParse(spec string) cron.Schedule {
	s, err := cron.ParseStandard(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// Store persists the last day each user drew a card on each topic.
type Store interface {
	LastUsedDay(ctx context.Context, userID int64, topic string) (string, error)
	MarkUsed(ctx context.Context, userID int64, topic, day string) error
	ClaimDay(ctx context.Context, userID int64, topic, day string) (bool, error)
}

// Gate decides whether a user may draw a card on a topic today.
type Gate struct {
	store    Store
	now      func() time.Time
	loc      *time.Location
	override bool
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// WithLocation sets the calendar whose midnight resets the quota.
func WithLocation(loc *time.Location) Option {
	return func(g *Gate) {
		g.loc = loc
	}
}

// WithOverride disables the limit: every check passes and nothing is written.
// Meant for manual testing only.
func WithOverride(enabled bool) Option {
	return func(g *Gate) {
		g.override = enabled
	}
}

// NewGate creates a gate backed by store.
func NewGate(store Store, opts ...Option) *Gate {
	g := &Gate{
		store: store,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Override reports whether the limit is disabled.
func (g *Gate) Override() bool {
	return g.override
}

// Today returns the current day key in the gate's calendar.
func (g *Gate) Today() string {
	return DayKey(g.now().In(g.loc))
}

// MayUse reports whether the user has not yet drawn on topic today. Storage
// errors are returned, never treated as permission.
func (g *Gate) MayUse(ctx context.Context, userID int64, topic string) (bool, error) {
	if g.override {
		return true, nil
	}

	day, err := g.store.LastUsedDay(ctx, userID, topic)
	if errors.Is(err, storage.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("load usage: %w", err)
	}
	return day != g.Today(), nil
}

// RecordUse marks topic as used today for the user, overwriting any earlier
// day.
func (g *Gate) RecordUse(ctx context.Context, userID int64, topic string) error {
	if g.override {
		return nil
	}
	if err := g.store.MarkUsed(ctx, userID, topic, g.Today()); err != nil {
		return fmt.Errorf("record usage: %w", err)
	}
	return nil
}

// TryUse checks and records in one atomic step. It reports false when the
// user already drew on topic today, including when a concurrent request got
// there first.
func (g *Gate) TryUse(ctx context.Context, userID int64, topic string) (bool, error) {
	if g.override {
		return true, nil
	}
	ok, err := g.store.ClaimDay(ctx, userID, topic, g.Today())
	if err != nil {
		return false, fmt.Errorf("claim usage: %w", err)
	}
	return ok, nil
}

// SecondsToReset returns the seconds left until the next midnight in the
// gate's calendar.
func (g *Gate) SecondsToReset() int {
	return SecondsUntilMidnight(g.now().In(g.loc))
}

// DayKey formats t as a stored day key in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// SecondsUntilMidnight returns whole seconds from t to the next midnight in
// t's location.
func SecondsUntilMidnight(t time.Time) int {
	return max(0, int(midnight.Next(t).Sub(t).Seconds()))
}
