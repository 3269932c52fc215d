package queue

import "math"

// FairnessModel turns a participant's history into a draw weight:
//
//	weight = max(Floor, Base - PickCount*PickPenalty + WaitCount*WaitBonus)
//
// Frequent winners sink linearly toward Floor (never zero); long waiters gain
// WaitBonus per round waited.
type FairnessModel struct {
	Base        float64
	PickPenalty float64
	WaitBonus   float64
	Floor       float64
}

// DefaultFairness is the production weighting.
var DefaultFairness = FairnessModel{
	Base:        0.7,
	PickPenalty: 0.3,
	WaitBonus:   0.1,
	Floor:       0.1,
}

// WeightOf is a pure function of the record. Never cache its result.
func (m FairnessModel) WeightOf(p Participant) float64 {
	w := m.Base - float64(p.PickCount)*m.PickPenalty + float64(p.WaitCount)*m.WaitBonus
	return math.Max(m.Floor, w)
}
