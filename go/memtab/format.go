package memtab

import (
	"fmt"

	"github.com/pkg/errors"
)

type Format int

const (
	FormatNone Format = iota
	// [phys_base][start][end_exclusive][flags]
	FormatEndAddress
	// [n_sections][phys_base][start][flags]
	FormatSectionCount
)

var formatNames = map[Format]string{
	FormatNone:         "none",
	FormatEndAddress:   "end",
	FormatSectionCount: "count",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func (f Format) supported() bool {
	return f == FormatEndAddress || f == FormatSectionCount
}

// ParseFormat maps a configured format name back to its tag.
// "none" parses, but decoding with it always fails.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatNone, errors.Errorf("unknown table format %q (want end, count or none)", name)
}
