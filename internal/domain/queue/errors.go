package queue

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrOnCooldown   = errors.New("participant is on cooldown")
	ErrEmptyQueue   = errors.New("queue is empty")
	ErrNotInQueue   = errors.New("participant not in queue")
	ErrNotFound     = errors.New("participant not found")
	ErrInvalidCount = errors.New("invalid draw count")
)

// CooldownError is returned by Enter while the participant's join cooldown is
// still running. errors.Is(err, ErrOnCooldown) matches it.
type CooldownError struct {
	Remaining  time.Duration
	Privileged bool
}

func (e *CooldownError) Error() string {
	if e.Privileged {
		return fmt.Sprintf("on cooldown: %d second(s) remaining", e.Seconds())
	}
	return fmt.Sprintf("on cooldown: %d minute(s) remaining", e.Minutes())
}

func (e *CooldownError) Is(target error) bool { return target == ErrOnCooldown }

// Seconds is the remaining time truncated to whole seconds.
func (e *CooldownError) Seconds() int {
	return int(e.Remaining / time.Second)
}

// Minutes rounds up: floor(remaining/60s) + 1.
func (e *CooldownError) Minutes() int {
	return int(e.Remaining/time.Minute) + 1
}

// InvalidCountError reports a draw count outside [Min, Max].
type InvalidCountError struct {
	Count, Min, Max int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("draw count %d outside %d..%d", e.Count, e.Min, e.Max)
}

func (e *InvalidCountError) Is(target error) bool { return target == ErrInvalidCount }
