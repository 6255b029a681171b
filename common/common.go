package common

const (
	NameSize  uint64 = 8  // space-padded, not null-terminated
	EntrySize uint64 = 30 // packed directory record
	DirMax    uint64 = 8
	DateSize  uint64 = 10 // "YYYY-MM-DD"
	TimeSize  uint64 = 8  // "HH:MM:SS"

	HeapBase uint16 = 0xC000 // first content byte lives here
	HeapSize uint64 = 0x1000

	TicksPerSecond uint32 = 60
	SecsPerDay     uint32 = 86400
	TicksPerDay    uint32 = SecsPerDay * TicksPerSecond // counter wraps here

	SecsPerHour uint32 = 3600
	SecsPerMin  uint32 = 60
)

// Slot indexes the directory table; live slots are [0, count).
type Slot = uint64
