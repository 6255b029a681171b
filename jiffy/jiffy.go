// Package jiffy models the free-running hardware tick counter: a 24-bit
// value incremented TicksPerSecond times a second that wraps at the day
// boundary. The counter is read-only during normal operation; Prime is the
// single session-setup write.
package jiffy

import (
	"github.com/ascarola/c64ux/u24"
)

// Counter provides access to the tick counter.
type Counter interface {
	// Ticks reads the current counter value.
	Ticks() u24.Word

	// Prime sets the counter during session setup. Tick updates are held
	// off between the priming write and the next Ticks read, so the read
	// that seeds rollover detection sees exactly the primed value.
	Prime(v u24.Word)
}
