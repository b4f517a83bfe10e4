package memtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewMPURegion(t *testing.T) {
	s := NewSession()
	r, err := NewMPURegion(s, MPUEntry{Slot: 2, Base: 0x04000000, Size: 0x20000, Access: 3<<8 | mpuXN})
	if err != nil {
		t.Fatal(err)
	}
	want := &Region{start: 0x04000000, end: 0x0401ffff, flags: 3<<8 | mpuXN, slot: 2, kind: KindMPU}
	if diff := cmp.Diff(want, r, regionCmp); diff != "" {
		t.Fatalf("region mismatch (-want +got):\n%s", diff)
	}
	if !r.IsReadable() || !r.IsWritable() || r.IsExecutable() {
		t.Errorf("permissions = %s, want rw-", r)
	}
	if _, ok := r.PhysBase(); ok {
		t.Error("MPU region reports a physical base")
	}
	// MMU entries decoded afterwards sort after the MPU table
	if s.Next() != 3 {
		t.Error("session did not advance past reserved slot")
	}
}

func TestNewMPURegionInvalid(t *testing.T) {
	s := NewSession()
	bad := []MPUEntry{
		{Slot: 0, Base: 0x1000, Size: 0},
		{Slot: -1, Base: 0x1000, Size: 0x1000},
		{Slot: 0, Base: 0xfffff000, Size: 0x2000},
	}
	for _, e := range bad {
		if _, err := NewMPURegion(s, e); err == nil {
			t.Errorf("accepted %#v", e)
		}
	}
	if s.Peek() != 0 {
		t.Error("rejected entries reserved a slot")
	}
	if _, err := NewMPURegion(s, MPUEntry{Slot: 1, Base: 0, Size: 0x1000}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMPURegion(s, MPUEntry{Slot: 1, Base: 0, Size: 0x1000}); err == nil {
		t.Error("duplicate slot accepted")
	}
}
