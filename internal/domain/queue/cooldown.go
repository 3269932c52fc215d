package queue

import "time"

const (
	DefaultPrivilegedCooldown = 30 * time.Second
	DefaultStandardCooldown   = 25 * time.Minute
)

// CooldownGate decides whether a participant may (re-)enter the queue now.
type CooldownGate struct {
	Privileged time.Duration
	Standard   time.Duration
}

func DefaultCooldownGate() CooldownGate {
	return CooldownGate{Privileged: DefaultPrivilegedCooldown, Standard: DefaultStandardCooldown}
}

// Duration is the cooldown set on a successful join.
func (g CooldownGate) Duration(privileged bool) time.Duration {
	if privileged {
		return g.Privileged
	}
	return g.Standard
}

// Check returns a *CooldownError when p has cooldownUntil > now. p may be nil
// for a participant seen for the first time. The report unit follows the
// caller's privilege, not the one in force when the cooldown was set.
func (g CooldownGate) Check(p *Participant, now time.Time, privileged bool) error {
	if p == nil || !p.HasCooldown() {
		return nil
	}
	if remaining := p.CooldownUntil.Sub(now); remaining > 0 {
		return &CooldownError{Remaining: remaining, Privileged: privileged}
	}
	return nil
}
