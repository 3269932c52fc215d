package queue

import (
	"math/rand/v2"
	"sort"
)

// RandSource is the uniform [0,1) source the draw engine samples from.
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type RandSource interface {
	Float64() float64
}

// globalRand uses the auto-seeded, goroutine-safe top-level generator.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Drawer performs weighted draws without replacement.
type Drawer struct {
	rng RandSource
}

func NewDrawer(rng RandSource) *Drawer {
	if rng == nil {
		rng = globalRand{}
	}
	return &Drawer{rng: rng}
}

// Draw picks min(count, len(ids)) distinct ids. Each pick samples the
// remaining candidates proportionally to their weight, then removes the picked
// candidate; remaining weights are left as they were. The result is in draw
// order. ids and weights are parallel and are not modified.
func (d *Drawer) Draw(ids []string, weights []float64, count int) []string {
	if len(ids) == 0 || count <= 0 {
		return []string{}
	}
	pool := append([]string(nil), ids...)
	ws := append([]float64(nil), weights...)

	n := min(count, len(pool))
	winners := make([]string, 0, n)
	for range n {
		i := d.pick(ws)
		winners = append(winners, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
		ws = append(ws[:i], ws[i+1:]...)
	}
	return winners
}

// pick maps one uniform sample onto the cumulative weights (bisect right).
func (d *Drawer) pick(ws []float64) int {
	cum := make([]float64, len(ws))
	total := 0.0
	for i, w := range ws {
		total += w
		cum[i] = total
	}
	x := d.rng.Float64() * total
	i := sort.Search(len(cum), func(k int) bool { return cum[k] > x })
	if i >= len(cum) {
		// solo por redondeo de punto flotante
		i = len(cum) - 1
	}
	return i
}
