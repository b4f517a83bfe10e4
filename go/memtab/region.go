package memtab

import (
	"fmt"
	"strings"

	"github.com/lunixbochs/firmmap/go/models/cpu"
)

type Kind int

const (
	KindMMU Kind = iota
	KindMPU
)

func (k Kind) String() string {
	switch k {
	case KindMMU:
		return "mmu"
	case KindMPU:
		return "mpu"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Region is one decoded table entry: an inclusive address range, its raw flags and
// the slot id used to break ties between overlapping regions (higher slot wins).
// Regions are never modified after they are decoded.
type Region struct {
	start, end uint64
	flags      uint32
	slot       int
	kind       Kind

	physBase uint64
	hasPhys  bool
}

func (r *Region) Start() uint64 { return r.start }
func (r *Region) End() uint64   { return r.end }
func (r *Region) Size() uint64  { return r.end - r.start + 1 }
func (r *Region) Flags() uint32 { return r.flags }
func (r *Region) Slot() int     { return r.slot }
func (r *Region) Kind() Kind    { return r.kind }

// PhysBase returns the physical address backing the range, if the table recorded one.
func (r *Region) PhysBase() (uint64, bool) {
	return r.physBase, r.hasPhys
}

func (r *Region) AP() uint8 {
	if r.kind == KindMPU {
		return MPUAPBits(r.flags)
	}
	return APBits(r.flags)
}

func (r *Region) IsReadable() bool { return Readable(r.AP()) }
func (r *Region) IsWritable() bool { return Writable(r.AP()) }

func (r *Region) IsExecutable() bool {
	if r.kind == KindMPU {
		return MPUExecutable(r.flags)
	}
	return Executable(r.flags)
}

// Prot converts the decoded permissions to cpu.PROT_* bits.
func (r *Region) Prot() int {
	prot := cpu.PROT_NONE
	if r.IsReadable() {
		prot |= cpu.PROT_READ
	}
	if r.IsWritable() {
		prot |= cpu.PROT_WRITE
	}
	if r.IsExecutable() {
		prot |= cpu.PROT_EXEC
	}
	return prot
}

func (r *Region) Contains(addr uint64) bool {
	return addr >= r.start && addr <= r.end
}

func (r *Region) Overlaps(o *Region) bool {
	return r.start <= o.end && o.start <= r.end
}

func (r *Region) String() string {
	desc := fmt.Sprintf("0x%08x-0x%08x exec=%t ap=%s slot=%d", r.start, r.end, r.IsExecutable(), APLabel(r.AP()), r.slot)
	if r.hasPhys {
		desc += fmt.Sprintf(" phys=0x%08x", r.physBase)
	}
	return desc
}

// Regions is a decoded table, in decode order unless sorted.
type Regions []*Region

func (rs Regions) String() string {
	s := make([]string, len(rs))
	for i, r := range rs {
		s[i] = r.String()
	}
	return strings.Join(s, "\n")
}
