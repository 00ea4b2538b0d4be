package strand

import "fmt"
import "sync/atomic"

const brokenCode = "broken code"

func runeToUnicodeCode(r rune) string {
	return fmt.Sprintf("U+%04X", int64(r))
}

// Keys for sources without an intrinsic font ID. The top bit is
// always set, which keeps them apart from typical ggfnt font IDs.
var sourceKeyCounter atomic.Uint64

func nextSourceKey() uint64 {
	return sourceKeyCounter.Add(1) | (1 << 63)
}

// Integer upscaling factor for bitmap sources, which can't be
// rasterized at arbitrary sizes.
func bitmapScaleFactor(size, nativeSize uint16) int {
	if nativeSize == 0 || size <= nativeSize { return 1 }
	return max(1, (int(size) + int(nativeSize >> 1))/int(nativeSize))
}
