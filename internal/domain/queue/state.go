package queue

import (
	"slices"
	"sync"
	"time"
)

// EnterResult tells a successful Enter apart from the already-queued no-op.
type EnterResult int

const (
	Joined EnterResult = iota + 1
	AlreadyQueued
)

// State is the queue of one guild. Every method runs to completion under the
// guild lock; callers do their external lookups before or after, never inside.
type State struct {
	mu sync.Mutex

	guildID      string
	queue        []string // join order, no duplicates
	participants map[string]*Participant
	rounds       int

	clock    Clock
	gate     CooldownGate
	fairness FairnessModel
	bounds   DrawBounds
	drawer   *Drawer
}

// NewState builds a standalone guild queue. Most callers go through Registry.
func NewState(guildID string, opts ...Option) *State {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return newState(guildID, cfg)
}

func newState(guildID string, cfg config) *State {
	return &State{
		guildID:      guildID,
		participants: make(map[string]*Participant),
		clock:        cfg.clock,
		gate:         cfg.gate,
		fairness:     cfg.fairness,
		bounds:       cfg.bounds,
		drawer:       NewDrawer(cfg.newRand()),
	}
}

func (s *State) GuildID() string { return s.guildID }

// Enter admits id into the queue unless its cooldown is still running.
// An id already in the queue is left untouched (AlreadyQueued, nil error).
func (s *State) Enter(id string, privileged bool) (EnterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	p := s.participants[id]
	if err := s.gate.Check(p, now, privileged); err != nil {
		return 0, err
	}
	if s.indexOf(id) >= 0 {
		return AlreadyQueued, nil
	}

	if p == nil {
		p = &Participant{ID: id}
		s.participants[id] = p
	}
	s.queue = append(s.queue, id)
	p.CooldownUntil = now.Add(s.gate.Duration(privileged))
	return Joined, nil
}

// Round is the outcome of one completed draw.
type Round struct {
	Number    int // 1-based, per guild
	Requested int
	Winners   []string // draw order
}

// ExecuteDraw runs one draw round and returns the winners in draw order.
func (s *State) ExecuteDraw(count int) ([]string, error) {
	r, err := s.ExecuteRound(count)
	if err != nil {
		return nil, err
	}
	return r.Winners, nil
}

// ExecuteRound is ExecuteDraw plus the round number it produced.
// Every queued participant waits one more round first; winners then get
// pickCount+1, waitCount=0 and leave the queue.
func (s *State) ExecuteRound(count int) (Round, error) {
	if count < s.bounds.Min || count > s.bounds.Max {
		return Round{}, &InvalidCountError{Count: count, Min: s.bounds.Min, Max: s.bounds.Max}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return Round{}, ErrEmptyQueue
	}

	for _, id := range s.queue {
		s.participants[id].WaitCount++
	}
	weights := s.weightsLocked()
	winners := s.drawer.Draw(s.queue, weights, count)

	for _, id := range winners {
		p := s.participants[id]
		p.PickCount++
		p.WaitCount = 0
		s.removeLocked(id)
	}
	s.rounds++
	return Round{Number: s.rounds, Requested: count, Winners: winners}, nil
}

// Position is the 1-based place of id in the queue.
func (s *State) Position(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return 0, ErrNotInQueue
	}
	return i + 1, nil
}

// Info is the queue snapshot of a single queued participant.
func (s *State) Info(id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, ErrNotInQueue
	}
	p := s.participants[id]
	return Entry{Position: i + 1, Participant: *p, Weight: s.fairness.WeightOf(*p)}, nil
}

// Remove takes id out of the queue. Its record and counters are kept.
func (s *State) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.removeLocked(id) {
		return ErrNotFound
	}
	return nil
}

// Clear empties the queue and returns how many were in it.
func (s *State) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.queue)
	s.queue = nil
	return n
}

// ResetCooldown drops id's cooldown, active or expired. It reports whether
// there was one to drop.
func (s *State) ResetCooldown(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok || !p.HasCooldown() {
		return false
	}
	p.CooldownUntil = time.Time{}
	return true
}

// List snapshots the queue in join order with fresh weights.
func (s *State) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.queue))
	for i, id := range s.queue {
		p := s.participants[id]
		out = append(out, Entry{Position: i + 1, Participant: *p, Weight: s.fairness.WeightOf(*p)})
	}
	return out
}

// Participant returns a copy of id's record, queued or not.
func (s *State) Participant(id string) (Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok {
		return Participant{}, false
	}
	return *p, true
}

func (s *State) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		QueueSize:       len(s.queue),
		TotalDrawRounds: s.rounds,
		Participants:    len(s.participants),
	}
}

// ---------- requieren s.mu ----------

func (s *State) indexOf(id string) int {
	return slices.Index(s.queue, id)
}

func (s *State) removeLocked(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.queue = slices.Delete(s.queue, i, i+1)
	return true
}

func (s *State) weightsLocked() []float64 {
	ws := make([]float64, len(s.queue))
	for i, id := range s.queue {
		ws[i] = s.fairness.WeightOf(*s.participants[id])
	}
	return ws
}
