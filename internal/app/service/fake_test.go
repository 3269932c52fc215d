package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jose-valero/gamejoin-queue-bot/internal/infra/storage"
)

type fakeDrawLog struct {
	mu      sync.Mutex
	rounds  []storage.DrawRound
	failing bool
	pruned  time.Time
}

func (f *fakeDrawLog) Record(_ context.Context, d storage.DrawRound) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("db down")
	}
	f.rounds = append(f.rounds, d)
	return nil
}

func (f *fakeDrawLog) Recent(_ context.Context, guildID string, limit int) ([]storage.DrawRound, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []storage.DrawRound
	for i := len(f.rounds) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rounds[i].GuildID == guildID {
			out = append(out, f.rounds[i])
		}
	}
	return out, nil
}

func (f *fakeDrawLog) Prune(_ context.Context, olderThan time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruned = olderThan
	kept := f.rounds[:0]
	var n int64
	for _, d := range f.rounds {
		if d.DrawnAt.Before(olderThan) {
			n++
			continue
		}
		kept = append(kept, d)
	}
	f.rounds = kept
	return n, nil
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
