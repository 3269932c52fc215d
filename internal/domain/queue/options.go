package queue

import "time"

// Clock is the host's time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DrawBounds limits how many winners one round may request.
type DrawBounds struct {
	Min, Max int
}

var DefaultDrawBounds = DrawBounds{Min: 1, Max: 5}

type config struct {
	clock    Clock
	newRand  func() RandSource
	gate     CooldownGate
	fairness FairnessModel
	bounds   DrawBounds
}

func defaultConfig() config {
	return config{
		clock:    systemClock{},
		newRand:  func() RandSource { return globalRand{} },
		gate:     DefaultCooldownGate(),
		fairness: DefaultFairness,
		bounds:   DefaultDrawBounds,
	}
}

type Option func(*config)

func WithClock(c Clock) Option {
	return func(cfg *config) { cfg.clock = c }
}

// WithRand sets the factory used to build each guild's random source.
// Each guild gets its own source, so non-concurrent sources are fine.
func WithRand(factory func() RandSource) Option {
	return func(cfg *config) { cfg.newRand = factory }
}

func WithCooldowns(privileged, standard time.Duration) Option {
	return func(cfg *config) {
		cfg.gate = CooldownGate{Privileged: privileged, Standard: standard}
	}
}

func WithFairness(m FairnessModel) Option {
	return func(cfg *config) { cfg.fairness = m }
}

func WithDrawBounds(lo, hi int) Option {
	return func(cfg *config) { cfg.bounds = DrawBounds{Min: lo, Max: hi} }
}
