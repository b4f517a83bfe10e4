package memtab

/*
ARMv7-A short-descriptor section entry (ARM DDI 0406C.d, B3.5.1):

 31     20  19  18  17  16  15    14:12  11:10  9  8:5     4   3  2  1  0
+---------+---+---+---+---+-----+------+------+--+------+----+--+--+--+---+
| PA base |NS | 0 |nG | S |AP[2]| TEX  |AP[1:0]|  |Domain| XN | C| B| 1|PXN|
+---------+---+---+---+---+-----+------+------+--+------+----+--+--+--+---+

The same 3-bit AP encoding is used by the ARMv7-R MPU region access control
register, where it sits at bits 10:8 and XN is bit 12.
*/

const (
	mmuXN  = 1 << 4
	mmuPXN = 1 << 0
	mpuXN  = 1 << 12
)

// indexed by AP value
var apNames = []string{"NA", "P_RW", "P_RW/U_RO", "RW", "RESV", "P_RO/U_NA", "RO_DEPR", "RO"}

// APBits assembles AP[2] (flags bit 15) and AP[1:0] (flags bits 11:10) of a section entry.
func APBits(flags uint32) uint8 {
	return uint8(((flags >> 13) & 0b100) | ((flags >> 10) & 0b11))
}

// MPUAPBits extracts AP[2:0] from bits 10:8 of an MPU access control value.
func MPUAPBits(access uint32) uint8 {
	return uint8((access >> 8) & 0b111)
}

func APLabel(ap uint8) string {
	return apNames[ap&0b111]
}

// Readable, Writable and Executable answer for the supervisor, not for user mode.

func Readable(ap uint8) bool {
	ap &= 0b111
	return ap != 0 && ap != 4
}

func Writable(ap uint8) bool {
	ap &= 0b111
	return ap == 1 || ap == 2 || ap == 3
}

// Executable is false only when both XN and PXN are set.
func Executable(flags uint32) bool {
	return flags&mmuXN == 0 || flags&mmuPXN == 0
}

func MPUExecutable(access uint32) bool {
	return access&mpuXN == 0
}
