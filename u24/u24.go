// Package u24 implements arithmetic on 24-bit words stored as three bytes,
// most significant first, plus the 16-bit field helpers the directory
// record layout uses.
package u24

// Word is a 24-bit unsigned value; index 0 holds the most significant byte.
type Word [3]byte

func FromUint32(v uint32) Word {
	return Word{byte(v >> 16), byte(v >> 8), byte(v)}
}

func (w Word) Uint32() uint32 {
	return uint32(w[0])<<16 | uint32(w[1])<<8 | uint32(w[2])
}

// Add returns a+b mod 2^24 and whether the sum carried out of the top byte.
func Add(a Word, b Word) (Word, bool) {
	var w Word
	var c uint16
	for i := 2; i >= 0; i-- {
		s := uint16(a[i]) + uint16(b[i]) + c
		w[i] = byte(s)
		c = s >> 8
	}
	return w, c != 0
}

// Add16 returns a+b mod 2^16 and the carry out.
func Add16(a uint16, b uint16) (uint16, bool) {
	s := uint32(a) + uint32(b)
	return uint16(s), s > 0xFFFF
}

// Mul computes a*n mod 2^24 by shift-and-add: the multiplicand is doubled
// each round and added in wherever the multiplier has a one bit.
func Mul(a Word, n uint16) Word {
	var acc Word
	for n != 0 {
		if n&1 != 0 {
			acc, _ = Add(acc, a)
		}
		a, _ = Add(a, a)
		n >>= 1
	}
	return acc
}

// DivMod divides n by d using restoring binary long division, one quotient
// bit per iteration from the most significant bit down. Exact integer
// semantics: n == q*d + r with r < d.
func DivMod(n Word, d uint32) (Word, uint32) {
	if d == 0 {
		panic("u24: division by zero")
	}
	var q Word
	var r uint32
	for i := 0; i < 24; i++ {
		idx := i / 8
		bit := uint(7 - i%8)
		r = r<<1 | uint32(n[idx]>>bit&1)
		if r >= d {
			r -= d
			q[idx] |= 1 << bit
		}
	}
	return q, r
}

// Less compares a and b byte by byte from the most significant byte down.
func Less(a Word, b Word) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Put16 stores v into b[0:2] little-endian.
func Put16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// Get16 loads a little-endian value from b[0:2].
func Get16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
