// Package dirfs is the RAM filesystem: a fixed table of packed 30-byte
// directory records plus an append-only content heap. Live records occupy
// slots [0, count) with no gaps; the rest of the table is zero. Heap bytes
// are never reclaimed, so content of deleted entries leaks until the
// session ends.
package dirfs

import (
	"bytes"
	"errors"
	"strings"

	"github.com/tchajed/marshal"

	"github.com/ascarola/c64ux/common"
	"github.com/ascarola/c64ux/u24"
	"github.com/ascarola/c64ux/util"
)

var (
	ErrNotFound = errors.New("file not found")
	ErrDirFull  = errors.New("directory full")
	ErrNoSpace  = errors.New("out of heap space")
)

// Info is the per-entry metadata surfaced by Stat and List. Name is
// trimmed at the first padding space.
type Info struct {
	Name   string
	Length uint16
	Start  uint16
	Date   string
	Time   string
}

type FileSys struct {
	dir   [common.DirMax * common.EntrySize]byte
	heap  [common.HeapSize]byte
	count uint64
	used  uint64 // heap watermark, as an offset from HeapBase
}

func MkFileSys() *FileSys {
	return &FileSys{}
}

// entry is one decoded directory record.
type entry struct {
	name   []byte // NameSize bytes, space padded
	start  uint16 // absolute address of the first content byte
	length uint16
	date   []byte
	time   []byte
}

func (fs *FileSys) slotBytes(slot common.Slot) []byte {
	off := slot * common.EntrySize
	return fs.dir[off : off+common.EntrySize]
}

func encodeEntry(e entry) []byte {
	enc := marshal.NewEnc(common.EntrySize)
	enc.PutBytes(e.name)
	var half [2]byte
	u24.Put16(half[:], e.start)
	enc.PutBytes(half[:])
	u24.Put16(half[:], e.length)
	enc.PutBytes(half[:])
	enc.PutBytes(e.date)
	enc.PutBytes(e.time)
	return enc.Finish()
}

func decodeEntry(b []byte) entry {
	dec := marshal.NewDec(b)
	var e entry
	e.name = dec.GetBytes(common.NameSize)
	e.start = u24.Get16(dec.GetBytes(2))
	e.length = u24.Get16(dec.GetBytes(2))
	e.date = dec.GetBytes(common.DateSize)
	e.time = dec.GetBytes(common.TimeSize)
	return e
}

// padName truncates name to NameSize bytes and space-pads the remainder.
func padName(name string) []byte {
	b := make([]byte, common.NameSize)
	n := util.Min(uint64(len(name)), common.NameSize)
	copy(b, name[:n])
	for i := n; i < common.NameSize; i++ {
		b[i] = ' '
	}
	return b
}

// Create appends content at the heap watermark and fills the next free
// directory slot. Nothing is mutated on failure. Zero-length content is
// legal and records the current watermark with length 0.
func (fs *FileSys) Create(name string, content []byte, date string, time string) error {
	if uint64(len(date)) != common.DateSize || uint64(len(time)) != common.TimeSize {
		panic("dirfs: bad timestamp width")
	}
	if fs.count >= common.DirMax {
		return ErrDirFull
	}
	if fs.used+uint64(len(content)) > common.HeapSize {
		return ErrNoSpace
	}
	start, _ := u24.Add16(common.HeapBase, uint16(fs.used))
	copy(fs.heap[fs.used:], content)
	e := entry{
		name:   padName(name),
		start:  start,
		length: uint16(len(content)),
		date:   []byte(date),
		time:   []byte(time),
	}
	copy(fs.slotBytes(fs.count), encodeEntry(e))
	fs.used += uint64(len(content))
	fs.count++
	util.DPrintf(1, "create %q: slot %d start %#x len %d\n",
		name, fs.count-1, e.start, e.length)
	return nil
}

// Find scans live slots in order comparing padded names; the first match
// wins, so a duplicate name behind it is unreachable.
func (fs *FileSys) Find(name string) (common.Slot, bool) {
	want := padName(name)
	for slot := uint64(0); slot < fs.count; slot++ {
		e := decodeEntry(fs.slotBytes(slot))
		if bytes.Equal(e.name, want) {
			return slot, true
		}
	}
	return 0, false
}

// Read returns the content bytes of the named file.
func (fs *FileSys) Read(name string) ([]byte, error) {
	slot, ok := fs.Find(name)
	if !ok {
		return nil, ErrNotFound
	}
	e := decodeEntry(fs.slotBytes(slot))
	off := uint64(e.start - common.HeapBase)
	return fs.heap[off : off+uint64(e.length)], nil
}

// Stat returns the named file's metadata.
func (fs *FileSys) Stat(name string) (Info, error) {
	slot, ok := fs.Find(name)
	if !ok {
		return Info{}, ErrNotFound
	}
	return fs.info(slot), nil
}

func (fs *FileSys) info(slot common.Slot) Info {
	e := decodeEntry(fs.slotBytes(slot))
	name := string(e.name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	return Info{
		Name:   name,
		Length: e.length,
		Start:  e.start,
		Date:   string(e.date),
		Time:   string(e.time),
	}
}

// Delete closes the gap by shifting every record after the match down one
// slot, lowest address first, then zero-fills the vacated last slot. The
// deleted entry's heap bytes stay allocated; compacting the heap would
// mean rewriting every start field.
func (fs *FileSys) Delete(name string) error {
	slot, ok := fs.Find(name)
	if !ok {
		return ErrNotFound
	}
	tail := fs.dir[(slot+1)*common.EntrySize : fs.count*common.EntrySize]
	copy(fs.dir[slot*common.EntrySize:], tail)
	fs.count--
	last := fs.slotBytes(fs.count)
	for i := range last {
		last[i] = 0
	}
	util.DPrintf(1, "delete %q: slot %d, %d records shifted\n",
		name, slot, fs.count-slot)
	return nil
}

// List reports live entries in insertion order. An empty directory is an
// empty slice; callers render that case distinctly.
func (fs *FileSys) List() []Info {
	var infos []Info
	for slot := uint64(0); slot < fs.count; slot++ {
		infos = append(infos, fs.info(slot))
	}
	return infos
}

func (fs *FileSys) Count() uint64 {
	return fs.count
}

// Watermark is the absolute address of the first free heap byte.
func (fs *FileSys) Watermark() uint16 {
	w, _ := u24.Add16(common.HeapBase, uint16(fs.used))
	return w
}

// Free reports the unallocated heap bytes remaining.
func (fs *FileSys) Free() uint64 {
	return common.HeapSize - fs.used
}
