package jiffy

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/ascarola/c64ux/common"
	"github.com/ascarola/c64ux/u24"
)

var _ Counter = (*MemCounter)(nil)

// MemCounter only moves when told to; tests drive it with Advance.
type MemCounter struct {
	ticks uint32
}

func NewMemCounter() *MemCounter {
	return &MemCounter{}
}

func (c *MemCounter) Ticks() u24.Word {
	return u24.FromUint32(c.ticks)
}

func (c *MemCounter) Prime(v u24.Word) {
	c.ticks = v.Uint32() % common.TicksPerDay
}

// Advance moves the counter forward n ticks, wrapping at the day boundary.
func (c *MemCounter) Advance(n uint32) {
	c.ticks = (c.ticks + n) % common.TicksPerDay
}

var _ Counter = (*HostCounter)(nil)

// HostCounter derives jiffies from CLOCK_MONOTONIC at TicksPerSecond,
// shifted by the offset established when the counter was primed.
type HostCounter struct {
	mu   sync.Mutex // the priming critical section
	base uint32
}

func NewHostCounter() *HostCounter {
	return &HostCounter{}
}

func rawJiffies() uint32 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic("clock_gettime failed: " + err.Error())
	}
	j := uint64(ts.Sec)*uint64(common.TicksPerSecond) +
		uint64(ts.Nsec)*uint64(common.TicksPerSecond)/1000000000
	return uint32(j % uint64(common.TicksPerDay))
}

func (c *HostCounter) Ticks() u24.Word {
	c.mu.Lock()
	t := (rawJiffies() + c.base) % common.TicksPerDay
	c.mu.Unlock()
	return u24.FromUint32(t)
}

func (c *HostCounter) Prime(v u24.Word) {
	c.mu.Lock()
	raw := rawJiffies()
	want := v.Uint32() % common.TicksPerDay
	c.base = (want + common.TicksPerDay - raw) % common.TicksPerDay
	c.mu.Unlock()
}
