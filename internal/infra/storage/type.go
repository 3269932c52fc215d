package storage

import (
	"time"

	"github.com/google/uuid"
)

// DrawRound is one completed draw as written to the draw log.
type DrawRound struct {
	ID        uuid.UUID
	GuildID   string
	Round     int // per-guild round number, restarts with the process
	Requested int
	WinnerIDs []string // draw order
	DrawnAt   time.Time
}
