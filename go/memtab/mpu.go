package memtab

import (
	"fmt"
)

// MPUEntry is an MPU region whose fields were already pulled out of the firmware's
// region table. Slot is the hardware region number, which doubles as the slot id.
type MPUEntry struct {
	Slot   int
	Base   uint32
	Size   uint64
	Access uint32
}

// NewMPURegion builds a region from e and reserves e.Slot in s.
// MPU regions describe physical memory directly and carry no physical base.
func NewMPURegion(s *Session, e MPUEntry) (*Region, error) {
	if e.Slot < 0 {
		return nil, &ValidationError{Off: -1, Reason: fmt.Sprintf("negative slot %d", e.Slot)}
	}
	if e.Size == 0 {
		return nil, &ValidationError{Off: -1, Reason: fmt.Sprintf("empty region in slot %d", e.Slot)}
	}
	end := uint64(e.Base) + e.Size - 1
	if end > maxAddr || end < uint64(e.Base) {
		return nil, &ValidationError{Off: -1, Reason: fmt.Sprintf("region %#x+%#x in slot %d overflows the address space", e.Base, e.Size, e.Slot)}
	}
	if err := s.Reserve(e.Slot); err != nil {
		return nil, err
	}
	return &Region{
		start: uint64(e.Base),
		end:   end,
		flags: e.Access,
		slot:  e.Slot,
		kind:  KindMPU,
	}, nil
}
