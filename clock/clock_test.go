package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ascarola/c64ux/common"
	"github.com/ascarola/c64ux/jiffy"
	"github.com/ascarola/c64ux/u24"
)

func TestSampleTicks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Time{0, 0, 0}, SampleTicks(u24.FromUint32(0)))
	assert.Equal(Time{23, 59, 59},
		SampleTicks(u24.FromUint32(86399*common.TicksPerSecond+common.TicksPerSecond-1)),
		"last tick of the day")
	assert.Equal(Time{1, 1, 1}, SampleTicks(u24.FromUint32(3661*common.TicksPerSecond)))
	assert.Equal(Time{0, 0, 0}, SampleTicks(u24.FromUint32(common.TicksPerSecond-1)),
		"integer division, no rounding up")
}

func TestTimeString(t *testing.T) {
	assert.Equal(t, "01:01:01", Time{1, 1, 1}.String())
	assert.Equal(t, "23:59:59", Time{23, 59, 59}.String())
}

func TestSampleTracksCounter(t *testing.T) {
	ctr := jiffy.NewMemCounter()
	clk := MkClock(ctr)

	ctr.Advance(3661 * common.TicksPerSecond)
	assert.Equal(t, Time{1, 1, 1}, clk.Sample())
}

func TestRolloverWrap(t *testing.T) {
	assert := assert.New(t)
	ctr := jiffy.NewMemCounter()
	clk := MkClock(ctr)
	assert.NoError(clk.SetDate("2026-08-23"))

	clk.last = u24.FromUint32(0x00FFFF)
	ctr.Prime(u24.FromUint32(0x000010))
	assert.True(clk.CheckRollover(), "counter went backwards, so it wrapped")
	assert.Equal("2026-08-24", clk.Date())
	assert.Equal(u24.FromUint32(0x000010), clk.last, "snapshot updated")

	// a second check without movement is quiet
	assert.False(clk.CheckRollover())
	assert.Equal("2026-08-24", clk.Date())
}

func TestRolloverForwardMotion(t *testing.T) {
	assert := assert.New(t)
	ctr := jiffy.NewMemCounter()
	clk := MkClock(ctr)
	assert.NoError(clk.SetDate("2026-08-23"))

	clk.last = u24.FromUint32(0x000010)
	ctr.Prime(u24.FromUint32(0x0000FF))
	assert.False(clk.CheckRollover(), "forward motion is not a wrap")
	assert.Equal("2026-08-23", clk.Date())
}

func TestAdvanceDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-08-23", "2026-08-24"},
		{"2024-02-28", "2024-02-29"}, // 24 mod 4 == 0
		{"2024-02-29", "2024-03-01"},
		{"2023-02-28", "2023-03-01"},
		{"2024-01-31", "2024-02-01"},
		{"2026-04-30", "2026-05-01"},
		{"2026-12-31", "2027-01-01"},
		{"2029-12-31", "2030-01-01"}, // carry into the tens digit
		{"2099-12-31", "2100-01-01"},
		{"9999-12-31", "0000-01-01"}, // explicit wraparound
		// two-digit rule: 2100 ends in 00, treated as leap (2000-2099 scope)
		{"2100-02-28", "2100-02-29"},
	}
	for _, c := range cases {
		d := []byte(c.in)
		AdvanceDate(d)
		assert.Equal(t, c.want, string(d), "advance of %s", c.in)
	}
}

func TestSetDate(t *testing.T) {
	assert := assert.New(t)
	clk := MkClock(jiffy.NewMemCounter())

	assert.NoError(clk.SetDate("2026-08-23"))
	assert.Equal("2026-08-23", clk.Date())

	assert.Equal(ErrBadDate, clk.SetDate("2026-8-23"))
	assert.Equal(ErrBadDate, clk.SetDate("2026/08/23"))
	assert.Equal(ErrBadDate, clk.SetDate("2026-0A-23"))
	assert.Equal(ErrBadDate, clk.SetDate(""))

	// field-valid but not calendar-valid is accepted
	assert.NoError(clk.SetDate("2026-13-99"))
}

func TestSetTime(t *testing.T) {
	assert := assert.New(t)
	ctr := jiffy.NewMemCounter()
	clk := MkClock(ctr)

	assert.NoError(clk.SetTime(1, 1, 1))
	assert.Equal(uint32(3661*common.TicksPerSecond), ctr.Ticks().Uint32())
	assert.Equal(Time{1, 1, 1}, clk.Sample())
	assert.False(clk.CheckRollover(), "priming seeds the snapshot")

	assert.NoError(clk.SetTime(23, 59, 59))
	assert.Equal(Time{23, 59, 59}, clk.Sample())

	assert.Equal(ErrBadTime, clk.SetTime(24, 0, 0))
	assert.Equal(ErrBadTime, clk.SetTime(0, 60, 0))
	assert.Equal(ErrBadTime, clk.SetTime(0, 0, 60))
}

func TestSetTimeString(t *testing.T) {
	assert := assert.New(t)
	clk := MkClock(jiffy.NewMemCounter())

	assert.NoError(clk.SetTimeString("10:30:00"))
	assert.Equal(Time{10, 30, 0}, clk.Sample())

	assert.Equal(ErrBadTime, clk.SetTimeString("5:00:00"))
	assert.Equal(ErrBadTime, clk.SetTimeString("10-30-00"))
	assert.Equal(ErrBadTime, clk.SetTimeString("AA:BB:CC"))
	assert.Equal(ErrBadTime, clk.SetTimeString("25:00:00"))
}
