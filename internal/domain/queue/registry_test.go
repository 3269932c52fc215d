package queue

import (
	"fmt"
	"slices"
	"sync"
	"testing"
)

func TestRegistryLazyAndIsolated(t *testing.T) {
	r := NewRegistry(WithClock(&fakeClock{now: t0}))

	if _, ok := r.Lookup("g1"); ok {
		t.Fatalf("Lookup created state")
	}
	g1 := r.Guild("g1")
	if r.Guild("g1") != g1 {
		t.Fatalf("Guild returned a different state on second call")
	}
	g2 := r.Guild("g2")
	if g1.GuildID() != "g1" || g2.GuildID() != "g2" {
		t.Fatalf("guild ids = %q, %q", g1.GuildID(), g2.GuildID())
	}

	mustEnter(t, g1, "A", false)
	if g2.Stats().QueueSize != 0 {
		t.Fatalf("g2 sees g1's queue")
	}
	// same user, other guild: own record, own cooldown
	mustEnter(t, g2, "A", false)

	if ids := r.GuildIDs(); !slices.Equal(ids, []string{"g1", "g2"}) {
		t.Fatalf("GuildIDs = %v", ids)
	}
}

func TestRegistryConcurrentGuilds(t *testing.T) {
	r := NewRegistry(WithCooldowns(0, 0))
	var wg sync.WaitGroup
	for g := range 8 {
		for u := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				st := r.Guild(fmt.Sprintf("g%d", g))
				_, _ = st.Enter(fmt.Sprintf("u%d", u), false)
			}()
		}
	}
	wg.Wait()

	if n := len(r.GuildIDs()); n != 8 {
		t.Fatalf("guilds = %d, want 8", n)
	}
	for _, id := range r.GuildIDs() {
		st, _ := r.Lookup(id)
		if got := st.Stats().QueueSize; got != 10 {
			t.Fatalf("%s queue size = %d, want 10", id, got)
		}
		invariant(t, st)
	}
}

func TestRegistryPerGuildRand(t *testing.T) {
	calls := 0
	r := NewRegistry(WithRand(func() RandSource { calls++; return seeded(uint64(calls), 0) }))
	r.Guild("a")
	r.Guild("b")
	r.Guild("a")
	if calls != 2 {
		t.Fatalf("rand factory called %d times, want once per guild", calls)
	}
}
