package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

var ErrNoDrawLog = errors.New("draw log not configured")

// HistoryService lee y poda el draw log.
type HistoryService struct {
	log       DrawLog
	retention time.Duration
}

func NewHistoryService(l DrawLog, retention time.Duration) *HistoryService {
	return &HistoryService{log: l, retention: retention}
}

func (h *HistoryService) Enabled() bool { return h.log != nil }

func (h *HistoryService) Show(ctx context.Context, guildID string, limit int) (string, error) {
	if h.log == nil {
		return "ℹ️ Draw history is not enabled on this bot.", nil
	}
	rounds, err := h.log.Recent(ctx, guildID, limit)
	if err != nil {
		return "", err
	}
	if len(rounds) == 0 {
		return "ℹ️ No draws recorded yet.", nil
	}

	var b strings.Builder
	b.WriteString("📜 **Recent draws**\n")
	for _, d := range rounds {
		fmt.Fprintf(&b, "#%d <t:%d:R> (%d requested): %s\n", d.Round, d.DrawnAt.Unix(), d.Requested, mentions(d.WinnerIDs))
	}
	return b.String(), nil
}

// Prune borra las rondas más viejas que la retención.
func (h *HistoryService) Prune(ctx context.Context, now time.Time) (int64, error) {
	if h.log == nil {
		return 0, ErrNoDrawLog
	}
	if h.retention <= 0 {
		return 0, nil
	}
	n, err := h.log.Prune(ctx, now.Add(-h.retention))
	if err != nil {
		return 0, err
	}
	log.Printf("[janitor] pruned draw rounds=%d retention=%s", n, h.retention)
	return n, nil
}
