package memtab

import (
	"cmp"

	"golang.org/x/exp/slices"
)

func SortBySlot(rs Regions) {
	slices.SortFunc(rs, func(a, b *Region) int {
		return cmp.Compare(a.slot, b.slot)
	})
}

// SortByStart orders by start address, then by slot.
func SortByStart(rs Regions) {
	slices.SortFunc(rs, func(a, b *Region) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return cmp.Compare(a.slot, b.slot)
	})
}

// Winner returns the region claiming addr with the highest slot, or nil.
func (rs Regions) Winner(addr uint64) *Region {
	var best *Region
	for _, r := range rs {
		if r.Contains(addr) && (best == nil || r.slot > best.slot) {
			best = r
		}
	}
	return best
}

// Overlapping returns every region intersecting o, excluding o itself.
func (rs Regions) Overlapping(o *Region) Regions {
	var out Regions
	for _, r := range rs {
		if r != o && r.Overlaps(o) {
			out = append(out, r)
		}
	}
	return out
}
