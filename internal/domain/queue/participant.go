package queue

import "time"

// Participant is the long-lived fairness record of one member of a guild.
// Records survive leaving the queue; re-joining reuses the counters.
type Participant struct {
	ID            string
	PickCount     int       // times drawn, ever
	WaitCount     int       // draw rounds since last win (or since first join)
	CooldownUntil time.Time // zero when no cooldown is set
}

// HasCooldown reports whether a cooldown is recorded, expired or not.
func (p Participant) HasCooldown() bool { return !p.CooldownUntil.IsZero() }

// Entry is a read-only snapshot of a queued participant.
type Entry struct {
	Position int // 1-based
	Participant
	Weight float64
}

// Stats summarizes one guild's queue.
type Stats struct {
	QueueSize       int
	TotalDrawRounds int
	Participants    int // records ever created, queued or not
}
