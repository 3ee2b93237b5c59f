package cpu

import "github.com/klauspost/cpuid/v2"

const (
	// MinBlockWidth and MaxBlockWidth bound the number of complex columns
	// a strided transform processes per cache block.
	MinBlockWidth = 4
	MaxBlockWidth = 64

	fallbackL1D = 32 << 10

	// bytes touched per column by the 32-row bottom kernel
	bottomBytesPerColumn = 32 * 16
)

// CacheInfo is the subset of the cache geometry used for tuning.
type CacheInfo struct {
	L1D            int
	L2             int
	ThreadsPerCore int
	PhysicalCores  int
}

// DetectCache reads the cache geometry from CPUID. Unknown values are
// reported as zero or negative by cpuid and left as is.
func DetectCache() CacheInfo {
	return CacheInfo{
		L1D:            cpuid.CPU.Cache.L1D,
		L2:             cpuid.CPU.Cache.L2,
		ThreadsPerCore: cpuid.CPU.ThreadsPerCore,
		PhysicalCores:  cpuid.CPU.PhysicalCores,
	}
}

// DefaultBlockWidth returns the platform default block width for a
// strided transform run by the given number of concurrent workers.
func DefaultBlockWidth(workers int) int {
	return BlockWidthFor(DetectCache(), workers)
}

// BlockWidthFor sizes a column block so the bottom kernel's working set
// fills half of L1D. When more workers than physical cores share SMT
// siblings, the budget is split between the hardware threads of a core.
func BlockWidthFor(info CacheInfo, workers int) int {
	l1 := info.L1D
	if l1 <= 0 {
		l1 = fallbackL1D
	}

	if info.ThreadsPerCore > 1 && workers > info.PhysicalCores && info.PhysicalCores > 0 {
		l1 /= info.ThreadsPerCore
	}

	width := l1 / (2 * bottomBytesPerColumn)
	if width < MinBlockWidth {
		width = MinBlockWidth
	}

	if width > MaxBlockWidth {
		width = MaxBlockWidth
	}

	return width
}
