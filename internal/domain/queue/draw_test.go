package queue

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func seeded(a, b uint64) *rand.Rand { return rand.New(rand.NewPCG(a, b)) }

// fixedRand replays the given samples in order.
type fixedRand struct{ xs []float64 }

func (f *fixedRand) Float64() float64 {
	x := f.xs[0]
	f.xs = f.xs[1:]
	return x
}

func TestDrawDistinctAndBounded(t *testing.T) {
	d := NewDrawer(seeded(1, 2))
	ids := []string{"a", "b", "c", "d", "e"}
	ws := []float64{0.7, 0.1, 1.2, 0.4, 0.7}

	for round := 0; round < 200; round++ {
		got := d.Draw(ids, ws, 3)
		if len(got) != 3 {
			t.Fatalf("round %d: got %d winners, want 3", round, len(got))
		}
		seen := map[string]bool{}
		for _, id := range got {
			if seen[id] {
				t.Fatalf("round %d: duplicate winner %q in %v", round, id, got)
			}
			if !slices.Contains(ids, id) {
				t.Fatalf("round %d: winner %q not a candidate", round, id)
			}
			seen[id] = true
		}
	}
}

func TestDrawCountLargerThanPool(t *testing.T) {
	d := NewDrawer(seeded(3, 4))
	got := d.Draw([]string{"a", "b"}, []float64{0.7, 0.7}, 5)
	if len(got) != 2 {
		t.Fatalf("got %v, want both candidates", got)
	}
	sorted := slices.Sorted(slices.Values(got))
	if !slices.Equal(sorted, []string{"a", "b"}) {
		t.Fatalf("got %v, want a and b", got)
	}
}

func TestDrawEmpty(t *testing.T) {
	d := NewDrawer(seeded(1, 1))
	if got := d.Draw(nil, nil, 3); got == nil || len(got) != 0 {
		t.Fatalf("empty pool: got %#v, want empty non-nil slice", got)
	}
	if got := d.Draw([]string{"a"}, []float64{1}, 0); len(got) != 0 {
		t.Fatalf("count 0: got %v", got)
	}
}

func TestDrawDoesNotMutateInputs(t *testing.T) {
	ids := []string{"a", "b", "c"}
	ws := []float64{0.1, 0.2, 0.3}
	NewDrawer(seeded(5, 6)).Draw(ids, ws, 2)
	if !slices.Equal(ids, []string{"a", "b", "c"}) || !slices.Equal(ws, []float64{0.1, 0.2, 0.3}) {
		t.Fatalf("inputs modified: %v %v", ids, ws)
	}
}

func TestDrawReproducibleWithSeed(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f"}
	ws := []float64{0.7, 0.4, 0.1, 0.9, 0.7, 1.0}
	first := NewDrawer(seeded(42, 7)).Draw(ids, ws, 4)
	second := NewDrawer(seeded(42, 7)).Draw(ids, ws, 4)
	if !slices.Equal(first, second) {
		t.Fatalf("same seed, different draws: %v vs %v", first, second)
	}
}

func TestDrawCumulativeMapping(t *testing.T) {
	// cum = [1, 3, 6]; x = sample*6
	ids := []string{"a", "b", "c"}
	ws := []float64{1, 2, 3}
	cases := []struct {
		sample float64
		want   string
	}{
		{0, "a"},
		{0.16, "a"},
		{0.17, "b"},
		{0.49, "b"},
		{0.5, "c"}, // x == 3 lands right of the boundary
		{0.999, "c"},
	}
	for _, tc := range cases {
		d := NewDrawer(&fixedRand{xs: []float64{tc.sample}})
		got := d.Draw(ids, ws, 1)
		if len(got) != 1 || got[0] != tc.want {
			t.Fatalf("sample %v: got %v, want %s", tc.sample, got, tc.want)
		}
	}
}

func TestDrawWithoutReplacementRenormalizes(t *testing.T) {
	// first pick removes "c" (x=0.9*6=5.4), second samples over [1,2] -> cum [1,3], x=0.5*3=1.5 -> "b"
	d := NewDrawer(&fixedRand{xs: []float64{0.9, 0.5}})
	got := d.Draw([]string{"a", "b", "c"}, []float64{1, 2, 3}, 2)
	if !slices.Equal(got, []string{"c", "b"}) {
		t.Fatalf("got %v, want [c b]", got)
	}
}

func TestDrawFavoursHeavierWeights(t *testing.T) {
	d := NewDrawer(seeded(9, 9))
	ids := []string{"heavy", "light"}
	ws := []float64{1.0, 0.1}
	heavy := 0
	const rounds = 5000
	for range rounds {
		if d.Draw(ids, ws, 1)[0] == "heavy" {
			heavy++
		}
	}
	// expected ~0.909
	if ratio := float64(heavy) / rounds; ratio < 0.85 || ratio > 0.96 {
		t.Fatalf("heavy won %.3f of draws, want about 0.91", ratio)
	}
}
