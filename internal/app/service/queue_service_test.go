package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/jose-valero/gamejoin-queue-bot/internal/domain/queue"
)

var t0 = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, dl DrawLog) (*QueueService, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: t0}
	reg := queue.NewRegistry(
		queue.WithClock(clk),
		queue.WithRand(func() queue.RandSource { return rand.New(rand.NewPCG(1, 2)) }),
	)
	svc := NewQueueService(reg, dl)
	svc.now = clk.Now
	return svc, clk
}

func TestJoinMessages(t *testing.T) {
	svc, clk := newTestService(t, nil)
	ctx := context.Background()

	msg, err := svc.Join(ctx, "g", "u1", false)
	if err != nil || msg != "You have joined the queue!" {
		t.Fatalf("first join: %q, %v", msg, err)
	}

	clk.now = clk.now.Add(time.Second)
	msg, _ = svc.Join(ctx, "g", "u1", false)
	if msg != "You must wait 25 more minute(s) before joining again!" {
		t.Fatalf("cooldown msg = %q", msg)
	}

	msg, _ = svc.Join(ctx, "g", "mod", true)
	if msg != "You have joined the queue!" {
		t.Fatalf("mod join = %q", msg)
	}
	clk.now = clk.now.Add(10 * time.Second)
	msg, _ = svc.Join(ctx, "g", "mod", true)
	if msg != "You must wait 20 more second(s) before joining again!" {
		t.Fatalf("mod cooldown msg = %q", msg)
	}

	clk.now = clk.now.Add(time.Minute)
	msg, _ = svc.Join(ctx, "g", "mod", true)
	if msg != "You have joined the queue!" {
		t.Fatalf("already queued = %q", msg)
	}
	if n := svc.Stats("g").QueueSize; n != 2 {
		t.Fatalf("queue size = %d, want 2", n)
	}
}

func TestChooseRecordsRound(t *testing.T) {
	dl := &fakeDrawLog{}
	svc, _ := newTestService(t, dl)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_, _ = svc.Join(ctx, "g", id, false)
	}

	msg, winners, err := svc.Choose(ctx, "g", 2)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if len(winners) != 2 {
		t.Fatalf("winners = %v", winners)
	}
	want := "🎉 Winner(s): <@" + winners[0] + ">, <@" + winners[1] + ">!"
	if msg != want {
		t.Fatalf("msg = %q, want %q", msg, want)
	}

	if len(dl.rounds) != 1 {
		t.Fatalf("draw log rows = %d, want 1", len(dl.rounds))
	}
	rec := dl.rounds[0]
	if rec.GuildID != "g" || rec.Round != 1 || rec.Requested != 2 || !rec.DrawnAt.Equal(t0) {
		t.Fatalf("record = %+v", rec)
	}
	if strings.Join(rec.WinnerIDs, ",") != strings.Join(winners, ",") {
		t.Fatalf("recorded winners %v, drawn %v", rec.WinnerIDs, winners)
	}
}

func TestChoosePolicyMessages(t *testing.T) {
	dl := &fakeDrawLog{}
	svc, _ := newTestService(t, dl)
	ctx := context.Background()

	msg, _, err := svc.Choose(ctx, "g", 1)
	if err != nil || msg != "The queue is empty!" {
		t.Fatalf("empty: %q, %v", msg, err)
	}
	_, _ = svc.Join(ctx, "g", "a", false)
	msg, _, err = svc.Choose(ctx, "g", 9)
	if err != nil || msg != "Please choose a number between 1 and 5!" {
		t.Fatalf("invalid: %q, %v", msg, err)
	}
	if len(dl.rounds) != 0 {
		t.Fatalf("failed draws must not be recorded")
	}

	if _, err := svc.Draw(ctx, "g", 0); !errors.Is(err, queue.ErrInvalidCount) {
		t.Fatalf("Draw(0): %v", err)
	}
}

func TestDrawLogFailureKeepsDraw(t *testing.T) {
	dl := &fakeDrawLog{failing: true}
	svc, _ := newTestService(t, dl)
	ctx := context.Background()
	_, _ = svc.Join(ctx, "g", "a", false)

	round, err := svc.Draw(ctx, "g", 1)
	if err != nil {
		t.Fatalf("Draw with failing log: %v", err)
	}
	if len(round.Winners) != 1 || round.Winners[0] != "a" {
		t.Fatalf("round = %+v", round)
	}
	if n := svc.Stats("g").QueueSize; n != 0 {
		t.Fatalf("queue size after draw = %d, want 0", n)
	}
}

func TestRemoveClearReset(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_, _ = svc.Join(ctx, "g", id, false)
	}

	if msg, _ := svc.Remove(ctx, "g", "b"); msg != "✅ Removed <@b> from the queue!" {
		t.Fatalf("remove = %q", msg)
	}
	if msg, _ := svc.Remove(ctx, "g", "b"); msg != "User not found in queue!" {
		t.Fatalf("remove twice = %q", msg)
	}
	if msg := svc.ResetCooldown("g", "b"); msg != "✅ Reset cooldown for <@b>!" {
		t.Fatalf("reset = %q", msg)
	}
	if msg := svc.ResetCooldown("g", "b"); msg != "<@b> has no active cooldown!" {
		t.Fatalf("reset twice = %q", msg)
	}
	if msg, _ := svc.Join(ctx, "g", "b", false); msg != "You have joined the queue!" {
		t.Fatalf("rejoin after reset = %q", msg)
	}
	if msg := svc.Clear(ctx, "g"); msg != "✅ Cleared 3 user(s) from the queue!" {
		t.Fatalf("clear = %q", msg)
	}
}

func TestInfoAndList(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	_, _ = svc.Join(ctx, "g", "a", false)
	_, _ = svc.Join(ctx, "g", "b", false)

	e, err := svc.Info("g", "b")
	if err != nil || e.Position != 2 || e.Weight != 0.7 {
		t.Fatalf("Info(b) = %+v, %v", e, err)
	}
	if _, err := svc.Info("g", "zz"); !errors.Is(err, queue.ErrNotInQueue) {
		t.Fatalf("Info(zz): %v", err)
	}
	if l := svc.List("g"); len(l) != 2 || l[0].ID != "a" {
		t.Fatalf("List = %+v", l)
	}
	if l := svc.List("other"); len(l) != 0 {
		t.Fatalf("other guild sees %+v", l)
	}
}

func TestReadsDoNotCreateGuilds(t *testing.T) {
	reg := queue.NewRegistry()
	svc := NewQueueService(reg, nil)

	_ = svc.List("ghost")
	_ = svc.Stats("ghost")
	if _, err := svc.Info("ghost", "u"); !errors.Is(err, queue.ErrNotInQueue) {
		t.Fatalf("Info on unknown guild: %v", err)
	}
	if ids := reg.GuildIDs(); len(ids) != 0 {
		t.Fatalf("reads created guilds: %v", ids)
	}
}
