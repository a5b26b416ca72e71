package scheduler

import (
	"context"
	"log/slog"
	"time"

	"tarot-telegram-bot/quota"
	"tarot-telegram-bot/reading"
)

// UsageSource reads quota records.
type UsageSource interface {
	UsageOn(ctx context.Context, day string) (map[string]int, error)
	CountRecords(ctx context.Context) (int, error)
}

// UsageSink receives the finished day's per-topic usage.
type UsageSink interface {
	SetDailyUsage(usage map[string]int)
}

// Rollover reports the day that just ended. It is meant to run right after
// midnight.
type Rollover struct {
	src  UsageSource
	sink UsageSink
	loc  *time.Location
	now  func() time.Time
}

// NewRollover creates a rollover job. sink may be nil.
func NewRollover(src UsageSource, sink UsageSink, loc *time.Location) *Rollover {
	return &Rollover{src: src, sink: sink, loc: loc, now: time.Now}
}

// Run logs the finished day's usage and the total number of stored records.
func (r *Rollover) Run(ctx context.Context) error {
	day := quota.DayKey(r.now().In(r.loc).AddDate(0, 0, -1))

	usage, err := r.src.UsageOn(ctx, day)
	if err != nil {
		return err
	}
	total, err := r.src.CountRecords(ctx)
	if err != nil {
		return err
	}

	// Topics nobody drew on are reported as zero.
	if usage == nil {
		usage = make(map[string]int)
	}
	for _, t := range reading.Topics() {
		if _, ok := usage[string(t)]; !ok {
			usage[string(t)] = 0
		}
	}

	if r.sink != nil {
		r.sink.SetDailyUsage(usage)
	}

	users := 0
	for _, n := range usage {
		users += n
	}
	slog.Info("quota day rolled over", "day", day, "readings", users, "by_topic", usage, "stored_records", total)
	return nil
}

// Job adapts Run for the scheduler, logging failures.
func (r *Rollover) Job() func() {
	return func() {
		if err := r.Run(context.Background()); err != nil {
			slog.Error("quota rollover failed", "error", err)
		}
	}
}
