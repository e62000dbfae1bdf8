// Package safe provides numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 narrows v to uint32, failing when v is negative or above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}
