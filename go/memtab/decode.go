package memtab

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/lunixbochs/firmmap/go/models"
)

// SectionSize is the span of one ARM MMU section.
const SectionSize = 0x100000

// largest address a 32-bit table can describe
const maxAddr = 0xffffffff

type endAddressRecord struct {
	PhysBase uint32
	Start    uint32
	EndExcl  uint32
	Flags    uint32
}

type sectionCountRecord struct {
	Sections uint32
	PhysBase uint32
	Start    uint32
	Flags    uint32
}

// Decode reads one section table record in format f from st and assigns it the
// next slot in s. On error nothing is returned and no slot is consumed.
func Decode(s *Session, st *models.StrucStream, f Format) (*Region, error) {
	off := st.Off
	var r Region
	switch f {
	case FormatEndAddress:
		var rec endAddressRecord
		if err := st.Unpack(&rec); err != nil {
			return nil, &ReadError{Off: off, Err: err}
		}
		if rec.EndExcl <= rec.Start {
			return nil, &ValidationError{Off: off, Reason: fmt.Sprintf("end %#x not above start %#x", rec.EndExcl, rec.Start)}
		}
		r = Region{
			start:    uint64(rec.Start),
			end:      uint64(rec.EndExcl) - 1,
			flags:    rec.Flags,
			physBase: uint64(rec.PhysBase),
			hasPhys:  true,
		}
	case FormatSectionCount:
		var rec sectionCountRecord
		if err := st.Unpack(&rec); err != nil {
			return nil, &ReadError{Off: off, Err: err}
		}
		if rec.Sections == 0 {
			return nil, &ValidationError{Off: off, Reason: "zero sections"}
		}
		end := uint64(rec.Start) + uint64(rec.Sections)*SectionSize - 1
		if end > maxAddr {
			return nil, &ValidationError{Off: off, Reason: fmt.Sprintf("%d sections at %#x overflow the address space", rec.Sections, rec.Start)}
		}
		r = Region{
			start:    uint64(rec.Start),
			end:      end,
			flags:    rec.Flags,
			physBase: uint64(rec.PhysBase),
			hasPhys:  true,
		}
	default:
		return nil, &FormatError{Format: f}
	}
	r.kind = KindMMU
	r.slot = s.Next()
	return &r, nil
}

// DecodeTable decodes exactly count consecutive records.
func DecodeTable(s *Session, st *models.StrucStream, f Format, count int) (Regions, error) {
	if !f.supported() {
		return nil, &FormatError{Format: f}
	}
	if count < 0 {
		return nil, errors.Errorf("negative record count %d", count)
	}
	// count comes from the caller, so grow as records actually decode
	var regions Regions
	for i := 0; i < count; i++ {
		off := st.Off
		r, err := Decode(s, st, f)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d at offset %#x", i, off)
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// DecodeAll decodes records until the source ends cleanly on a record boundary.
func DecodeAll(s *Session, st *models.StrucStream, f Format) (Regions, error) {
	if !f.supported() {
		return nil, &FormatError{Format: f}
	}
	var regions Regions
	for i := 0; ; i++ {
		off := st.Off
		r, err := Decode(s, st, f)
		if err != nil {
			if rerr, ok := err.(*ReadError); ok && rerr.Err == io.EOF {
				return regions, nil
			}
			return nil, errors.Wrapf(err, "record %d at offset %#x", i, off)
		}
		regions = append(regions, r)
	}
}
