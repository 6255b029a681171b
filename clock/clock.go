// Package clock turns the hardware tick counter into wall-clock time and
// keeps the session date, advancing it by one day whenever the counter is
// seen to have wrapped.
package clock

import (
	"errors"
	"fmt"

	"github.com/ascarola/c64ux/common"
	"github.com/ascarola/c64ux/jiffy"
	"github.com/ascarola/c64ux/u24"
	"github.com/ascarola/c64ux/util"
)

var (
	ErrBadDate = errors.New("malformed date")
	ErrBadTime = errors.New("time out of range")
)

// Time is a decomposed time of day.
type Time struct {
	Hours uint8
	Mins  uint8
	Secs  uint8
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Mins, t.Secs)
}

type Clock struct {
	ctr  jiffy.Counter
	last u24.Word // snapshot for rollover detection
	date [common.DateSize]byte
}

func MkClock(ctr jiffy.Counter) *Clock {
	c := &Clock{ctr: ctr}
	copy(c.date[:], "2000-01-01")
	c.last = ctr.Ticks()
	return c
}

// SampleTicks is the pure tick-to-time conversion: divide out the tick
// rate, then peel hours and minutes off the remainder by threshold
// subtraction.
func SampleTicks(ticks u24.Word) Time {
	q, _ := u24.DivMod(ticks, common.TicksPerSecond)
	secs := q.Uint32()
	var t Time
	for secs >= common.SecsPerHour {
		secs -= common.SecsPerHour
		t.Hours++
	}
	for secs >= common.SecsPerMin {
		secs -= common.SecsPerMin
		t.Mins++
	}
	t.Secs = uint8(secs)
	return t
}

func (c *Clock) Sample() Time {
	return SampleTicks(c.ctr.Ticks())
}

// CheckRollover advances the date once if the counter wrapped since the
// last check, then moves the snapshot forward unconditionally. Only
// wraparound is detected: a session suspended across several wraps still
// advances a single day.
func (c *Clock) CheckRollover() bool {
	cur := c.ctr.Ticks()
	wrapped := u24.Less(cur, c.last)
	if wrapped {
		AdvanceDate(c.date[:])
		util.DPrintf(1, "rollover: date now %s\n", c.date[:])
	}
	c.last = cur
	return wrapped
}

// monthDays is indexed by month-1; February is overridden in leap years.
var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// AdvanceDate moves a YYYY-MM-DD date forward one day in place, carrying
// day into month into year. The leap test looks only at the two low-order
// year digits, which is exact for 2000 through 2099.
func AdvanceDate(d []byte) {
	month := (d[5]-'0')*10 + (d[6] - '0')
	day := (d[8]-'0')*10 + (d[9] - '0')

	day++
	max := uint8(31)
	if month >= 1 && month <= 12 {
		max = monthDays[month-1]
	}
	if month == 2 {
		y2 := (d[2]-'0')*10 + (d[3] - '0')
		if y2%4 == 0 {
			max = 29
		}
	}
	if day > max {
		day = 1
		month++
	}
	if month > 12 {
		month = 1
		// decimal carry through the year, ones place leftward;
		// 9999-12-31 wraps to 0000-01-01
		for i := 3; i >= 0; i-- {
			if d[i] < '9' {
				d[i]++
				break
			}
			d[i] = '0'
		}
	}
	d[5] = '0' + month/10
	d[6] = '0' + month%10
	d[8] = '0' + day/10
	d[9] = '0' + day%10
}

// SetDate installs the session date. Fields must be digits in the right
// positions; calendar validity is not checked.
func (c *Clock) SetDate(s string) error {
	if uint64(len(s)) != common.DateSize || s[4] != '-' || s[7] != '-' {
		return ErrBadDate
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return ErrBadDate
		}
	}
	copy(c.date[:], s)
	return nil
}

func (c *Clock) Date() string {
	return string(c.date[:])
}

// SetTime primes the tick counter to a user-supplied time of day and seeds
// the rollover snapshot from the primed value. The counter holds tick
// updates off across Prime and the snapshot read.
func (c *Clock) SetTime(hours, mins, secs uint8) error {
	if hours > 23 || mins > 59 || secs > 59 {
		return ErrBadTime
	}
	total := u24.Mul(u24.FromUint32(uint32(hours)), uint16(common.SecsPerHour))
	m := u24.Mul(u24.FromUint32(uint32(mins)), uint16(common.SecsPerMin))
	total, _ = u24.Add(total, m)
	total, _ = u24.Add(total, u24.FromUint32(uint32(secs)))
	c.ctr.Prime(u24.Mul(total, uint16(common.TicksPerSecond)))
	c.last = c.ctr.Ticks()
	util.DPrintf(1, "primed to %02d:%02d:%02d\n", hours, mins, secs)
	return nil
}

// SetTimeString parses "HH:MM:SS" and primes the clock with it.
func (c *Clock) SetTimeString(s string) error {
	if uint64(len(s)) != common.TimeSize || s[2] != ':' || s[5] != ':' {
		return ErrBadTime
	}
	for i := 0; i < len(s); i++ {
		if i == 2 || i == 5 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return ErrBadTime
		}
	}
	h := (s[0]-'0')*10 + (s[1] - '0')
	m := (s[3]-'0')*10 + (s[4] - '0')
	sec := (s[6]-'0')*10 + (s[7] - '0')
	return c.SetTime(h, m, sec)
}
