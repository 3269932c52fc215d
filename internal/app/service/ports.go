package service

import (
	"context"
	"time"

	"github.com/jose-valero/gamejoin-queue-bot/internal/infra/storage"
)

// Lo implementa internal/infra/storage.DrawLogRepo
type DrawLog interface {
	Record(ctx context.Context, d storage.DrawRound) error
	Recent(ctx context.Context, guildID string, limit int) ([]storage.DrawRound, error)
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}
