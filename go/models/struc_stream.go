package models

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/lunixbochs/struc"
)

// StrucStream reads fixed-size records from a forward-only byte source.
// Off counts the bytes consumed so far and is used to report where a record failed.
type StrucStream struct {
	Stream io.Reader
	Order  binary.ByteOrder
	Off    int64
}

func NewStrucStream(r io.Reader, order binary.ByteOrder) *StrucStream {
	if order == nil {
		order = binary.LittleEndian
	}
	return &StrucStream{Stream: r, Order: order}
}

// Unpack reads exactly struc.Sizeof(i) bytes and unpacks them into i.
// Returns io.EOF if the source was already exhausted, or io.ErrUnexpectedEOF
// if it ran out partway through the record.
func (s *StrucStream) Unpack(i interface{}) error {
	size, err := struc.Sizeof(i)
	if err != nil {
		return err
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(s.Stream, buf)
	s.Off += int64(n)
	if err != nil {
		return err
	}
	return struc.UnpackWithOrder(bytes.NewReader(buf), i, s.Order)
}
