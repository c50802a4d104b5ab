// Package timer holds the countdown state machine. It owns the target
// instant and the message, and decides when the program moves from
// counting down to alerting to done. It knows nothing about rendering
// or audio; the TUI drives it with wall-clock ticks and user gestures.
package timer

import (
	"fmt"
	"time"
)

// State is the phase of a timer's life. Transitions only move forward:
// CountingDown → Alerting → Acknowledged.
type State int

const (
	// StateCountingDown means the target instant is still ahead.
	StateCountingDown State = iota
	// StateAlerting means the timer expired and the alert is showing.
	StateAlerting
	// StateAcknowledged means the user dismissed the alert.
	StateAcknowledged
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCountingDown:
		return "counting down"
	case StateAlerting:
		return "alerting"
	case StateAcknowledged:
		return "acknowledged"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Spec is the parsed timer request: when to fire and what to say.
// Built once at startup and never mutated.
type Spec struct {
	// Target is the absolute instant at which the timer expires.
	Target time.Time
	// Message is shown when the timer fires.
	Message string
}

// Machine tracks a single timer through its states. It is not safe for
// concurrent use; the UI update loop is its only caller.
type Machine struct {
	spec     Spec
	state    State
	ackDelay time.Duration
	// alertedAt is when the Alerting state was entered. Gestures before
	// alertedAt+ackDelay are ignored so a stray keystroke typed into
	// other work cannot dismiss the alert.
	alertedAt time.Time
}

// NewMachine returns a Machine in StateCountingDown. ackDelay is how
// long acknowledgement gestures are ignored after the alert appears.
func NewMachine(spec Spec, ackDelay time.Duration) *Machine {
	return &Machine{spec: spec, ackDelay: ackDelay}
}

// Spec returns the immutable timer request.
func (m *Machine) Spec() Spec { return m.spec }

// State returns the current phase.
func (m *Machine) State() State { return m.state }

// Tick advances the machine against the wall clock. It returns the
// remaining time (never negative) and whether this call performed the
// CountingDown→Alerting transition. The transition fires exactly once;
// later ticks return (0, false).
func (m *Machine) Tick(now time.Time) (time.Duration, bool) {
	if m.state != StateCountingDown {
		return 0, false
	}
	remaining := m.spec.Target.Sub(now)
	if remaining > 0 {
		return remaining, false
	}
	m.state = StateAlerting
	m.alertedAt = now
	return 0, true
}

// Acknowledge attempts the Alerting→Acknowledged transition. It returns
// true only when the machine is alerting and the guard delay has fully
// elapsed; in every other case the gesture is ignored.
func (m *Machine) Acknowledge(now time.Time) bool {
	if m.state != StateAlerting {
		return false
	}
	if now.Sub(m.alertedAt) < m.ackDelay {
		return false
	}
	m.state = StateAcknowledged
	return true
}

// FormatRemaining renders a remaining duration as HH:MM:SS using
// ceiling rounding, so the display never reads 00:00:00 while any time
// remains. Negative durations render as 00:00:00.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
