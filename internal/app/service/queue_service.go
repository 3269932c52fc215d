package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jose-valero/gamejoin-queue-bot/internal/domain/queue"
	"github.com/jose-valero/gamejoin-queue-bot/internal/infra/metrics"
	"github.com/jose-valero/gamejoin-queue-bot/internal/infra/storage"
)

const recordTimeout = 3 * time.Second

type QueueService struct {
	reg   *queue.Registry
	draws DrawLog // nil = sin draw log
	now   func() time.Time
}

func NewQueueService(reg *queue.Registry, draws DrawLog) *QueueService {
	return &QueueService{reg: reg, draws: draws, now: time.Now}
}

// Join mete al usuario en la cola del guild. Cooldown no es error: vuelve como mensaje.
func (s *QueueService) Join(ctx context.Context, guildID, userID string, privileged bool) (string, error) {
	st := s.reg.Guild(guildID)
	res, err := st.Enter(userID, privileged)

	var ce *queue.CooldownError
	switch {
	case errors.As(err, &ce):
		metrics.ObserveJoin(metrics.JoinCooldown)
		if ce.Privileged {
			return fmt.Sprintf("You must wait %d more second(s) before joining again!", ce.Seconds()), nil
		}
		return fmt.Sprintf("You must wait %d more minute(s) before joining again!", ce.Minutes()), nil
	case err != nil:
		return "", err
	}

	if res == queue.AlreadyQueued {
		metrics.ObserveJoin(metrics.JoinQueued)
	} else {
		metrics.ObserveJoin(metrics.JoinJoined)
		metrics.SetQueueSize(guildID, st.Stats().QueueSize)
		log.Printf("[queue] join guild=%s user=%s privileged=%v", guildID, userID, privileged)
	}
	return "You have joined the queue!", nil
}

// Draw ejecuta una ronda y después la reporta (draw log + métricas).
// Los errores de dominio (count inválido, cola vacía) se devuelven tal cual.
func (s *QueueService) Draw(ctx context.Context, guildID string, count int) (queue.Round, error) {
	st := s.reg.Guild(guildID)
	round, err := st.ExecuteRound(count)
	if err != nil {
		return queue.Round{}, err
	}
	log.Printf("[draw] guild=%s round=%d requested=%d winners=%v", guildID, round.Number, count, round.Winners)

	metrics.ObserveDraw(guildID, len(round.Winners))
	metrics.SetQueueSize(guildID, st.Stats().QueueSize)
	s.record(ctx, guildID, round)
	return round, nil
}

// el sorteo ya está comprometido en memoria; un fallo acá sólo se loguea
func (s *QueueService) record(ctx context.Context, guildID string, round queue.Round) {
	if s.draws == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	err := s.draws.Record(ctx, storage.DrawRound{
		GuildID:   guildID,
		Round:     round.Number,
		Requested: round.Requested,
		WinnerIDs: round.Winners,
		DrawnAt:   s.now().UTC(),
	})
	if err != nil {
		metrics.DrawLogFailed()
		log.Printf("[draw] guild=%s round=%d draw log: %v", guildID, round.Number, err)
	}
}

// Choose es Draw con la respuesta para el canal.
func (s *QueueService) Choose(ctx context.Context, guildID string, count int) (string, []string, error) {
	round, err := s.Draw(ctx, guildID, count)
	var ice *queue.InvalidCountError
	switch {
	case errors.As(err, &ice):
		return fmt.Sprintf("Please choose a number between %d and %d!", ice.Min, ice.Max), nil, nil
	case errors.Is(err, queue.ErrEmptyQueue):
		return "The queue is empty!", nil, nil
	case err != nil:
		return "", nil, err
	}
	return fmt.Sprintf("🎉 Winner(s): %s!", mentions(round.Winners)), round.Winners, nil
}

// las lecturas no crean la cola del guild
func (s *QueueService) List(guildID string) []queue.Entry {
	st, ok := s.reg.Lookup(guildID)
	if !ok {
		return []queue.Entry{}
	}
	return st.List()
}

func (s *QueueService) Info(guildID, userID string) (queue.Entry, error) {
	st, ok := s.reg.Lookup(guildID)
	if !ok {
		return queue.Entry{}, queue.ErrNotInQueue
	}
	return st.Info(userID)
}

func (s *QueueService) Stats(guildID string) queue.Stats {
	st, ok := s.reg.Lookup(guildID)
	if !ok {
		return queue.Stats{}
	}
	return st.Stats()
}

func (s *QueueService) Remove(ctx context.Context, guildID, userID string) (string, error) {
	st := s.reg.Guild(guildID)
	if err := st.Remove(userID); err != nil {
		if errors.Is(err, queue.ErrNotFound) {
			return "User not found in queue!", nil
		}
		return "", err
	}
	metrics.SetQueueSize(guildID, st.Stats().QueueSize)
	log.Printf("[queue] remove guild=%s user=%s", guildID, userID)
	return fmt.Sprintf("✅ Removed <@%s> from the queue!", userID), nil
}

func (s *QueueService) Clear(ctx context.Context, guildID string) string {
	n := s.reg.Guild(guildID).Clear()
	metrics.SetQueueSize(guildID, 0)
	log.Printf("[queue] clear guild=%s n=%d", guildID, n)
	return fmt.Sprintf("✅ Cleared %d user(s) from the queue!", n)
}

func (s *QueueService) ResetCooldown(guildID, userID string) string {
	if !s.reg.Guild(guildID).ResetCooldown(userID) {
		return fmt.Sprintf("<@%s> has no active cooldown!", userID)
	}
	return fmt.Sprintf("✅ Reset cooldown for <@%s>!", userID)
}

// Bounds es el rango de /choose.
func (s *QueueService) Bounds() queue.DrawBounds { return s.reg.Bounds() }

func mentions(ids []string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "<@" + id + ">"
	}
	return strings.Join(parts, ", ")
}
