package memtab

import (
	"fmt"
)

// ReadError means the byte source ran out or failed partway through a record.
type ReadError struct {
	Off int64
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed at %#x: %v", e.Off, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// FormatError is returned for FormatNone or an unknown format tag.
type FormatError struct {
	Format Format
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported table format: %s", e.Format)
}

// ValidationError reports a record that decoded cleanly but describes a degenerate range.
type ValidationError struct {
	Off    int64
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Off < 0 {
		return "invalid record: " + e.Reason
	}
	return fmt.Sprintf("invalid record at %#x: %s", e.Off, e.Reason)
}
