package conv

import (
	"fmt"
	"math"
)

// MaxRowID is the largest row index representable as a bitmap id.
const MaxRowID = math.MaxUint32

// RowID converts a row index to a bitmap id.
func RowID(i int) (uint32, error) {
	if i < 0 {
		return 0, fmt.Errorf("row index %d cannot be converted to uint32 (negative)", i)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(i) > MaxRowID {
		return 0, fmt.Errorf("row index %d cannot be converted to uint32 (too large)", i)
	}
	return uint32(i), nil
}

// Index converts a bitmap id back to a row index.
func Index(id uint32) (int, error) {
	if uint64(id) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("row id %d cannot be converted to int (too large)", id)
	}
	return int(id), nil
}

// FitsRowIDs reports whether every index in [0, n) converts with RowID.
func FitsRowIDs(n int) bool {
	return n >= 0 && uint64(n) <= uint64(MaxRowID)+1
}
