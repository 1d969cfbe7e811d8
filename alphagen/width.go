package alphagen

import (
	"math"
)

// resolveWidth returns the packed bit width for an alphabet whose largest
// discriminant is maxCode.  requested == 0 means no override was asked
// for.  The minimum width is ceil(log2(maxCode+1)), floored at 1 so that
// a one-symbol alphabet still occupies a slot; callers may request more
// bits than that, never fewer.
//
// The result becomes a compile-time constant of the generated codec, so
// the rounding here must match ceiling-of-log2 exactly: an off-by-one
// would corrupt every downstream packing computation.
func resolveWidth(maxCode uint8, requested int) (int, *DeclError) {
	minWidth := int(float32(math.Ceil(math.Log2(float64(maxCode) + 1))))
	if minWidth < 1 {
		minWidth = 1
	}
	if requested == 0 {
		return minWidth, nil
	}
	if requested < minWidth {
		return 0, declErrorf(WidthTooSmall, "",
			"bit width %d is not large enough to encode all symbols (min: %d)", requested, minWidth)
	}
	if requested > 8 {
		return 0, declErrorf(BadAttribute, "",
			"bit width %d exceeds the 8-bit slot limit", requested)
	}
	return requested, nil
}
