package u24

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(0), FromUint32(0).Uint32())
	assert.Equal(uint32(0xABCDEF), FromUint32(0xABCDEF).Uint32())
	assert.Equal(uint32(0xFFFFFF), FromUint32(0xFFFFFF).Uint32())
	assert.Equal(uint32(0x345678), FromUint32(0x12345678).Uint32(), "masked to 24 bits")
	assert.Equal(Word{0xAB, 0xCD, 0xEF}, FromUint32(0xABCDEF), "most significant byte first")
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	w, c := Add(FromUint32(1), FromUint32(2))
	assert.Equal(uint32(3), w.Uint32())
	assert.False(c)

	w, c = Add(FromUint32(0x0000FF), FromUint32(1))
	assert.Equal(uint32(0x000100), w.Uint32(), "carry ripples across bytes")
	assert.False(c)

	w, c = Add(FromUint32(0xFFFFFF), FromUint32(1))
	assert.Equal(uint32(0), w.Uint32())
	assert.True(c, "carry out of the top byte")
}

func TestAdd16(t *testing.T) {
	assert := assert.New(t)

	s, c := Add16(0xC000, 0x0FFF)
	assert.Equal(uint16(0xCFFF), s)
	assert.False(c)

	s, c = Add16(0xFFFF, 1)
	assert.Equal(uint16(0), s)
	assert.True(c)
}

func TestMul(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(0), Mul(FromUint32(1234), 0).Uint32())
	assert.Equal(uint32(1234), Mul(FromUint32(1234), 1).Uint32())
	assert.Equal(uint32(86399*60), Mul(FromUint32(86399), 60).Uint32())
	assert.Equal(uint32(3661*60), Mul(FromUint32(3661), 60).Uint32())
}

func TestDivMod(t *testing.T) {
	assert := assert.New(t)

	q, r := DivMod(FromUint32(0), 60)
	assert.Equal(uint32(0), q.Uint32())
	assert.Equal(uint32(0), r)

	q, r = DivMod(FromUint32(86399*60+59), 60)
	assert.Equal(uint32(86399), q.Uint32(), "last tick of the day")
	assert.Equal(uint32(59), r)

	q, r = DivMod(FromUint32(3661*60), 60)
	assert.Equal(uint32(3661), q.Uint32())
	assert.Equal(uint32(0), r)

	assert.Panics(func() { DivMod(FromUint32(1), 0) })
}

func TestLess(t *testing.T) {
	assert := assert.New(t)
	assert.True(Less(FromUint32(0x000010), FromUint32(0x00FFFF)))
	assert.False(Less(FromUint32(0x00FFFF), FromUint32(0x000010)))
	assert.False(Less(FromUint32(0x001234), FromUint32(0x001234)))
	assert.False(Less(FromUint32(0x010000), FromUint32(0x00FFFF)),
		"high byte decides before lower bytes")
}

func TestPut16Get16(t *testing.T) {
	assert := assert.New(t)
	var b [2]byte
	Put16(b[:], 0xC0DE)
	assert.Equal([]byte{0xDE, 0xC0}, b[:], "little-endian")
	assert.Equal(uint16(0xC0DE), Get16(b[:]))
}
