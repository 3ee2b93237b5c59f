package cpu

import "testing"

func TestBlockWidthFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    CacheInfo
		workers int
		want    int
	}{
		{"unknown cache falls back to 32KiB", CacheInfo{L1D: -1}, 1, 32},
		{"48KiB L1D", CacheInfo{L1D: 48 << 10, ThreadsPerCore: 2, PhysicalCores: 8}, 1, 48},
		{"SMT split under oversubscription", CacheInfo{L1D: 32 << 10, ThreadsPerCore: 2, PhysicalCores: 4}, 8, 16},
		{"no split when workers fit cores", CacheInfo{L1D: 32 << 10, ThreadsPerCore: 2, PhysicalCores: 4}, 4, 32},
		{"tiny cache clamps to minimum", CacheInfo{L1D: 1 << 10}, 1, MinBlockWidth},
		{"huge cache clamps to maximum", CacheInfo{L1D: 1 << 20}, 1, MaxBlockWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := BlockWidthFor(tt.info, tt.workers); got != tt.want {
				t.Errorf("BlockWidthFor(%+v, %d) = %d, want %d", tt.info, tt.workers, got, tt.want)
			}
		})
	}
}

func TestDefaultBlockWidthInRange(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 2, 64} {
		w := DefaultBlockWidth(workers)
		if w < MinBlockWidth || w > MaxBlockWidth {
			t.Errorf("DefaultBlockWidth(%d) = %d, outside [%d, %d]", workers, w, MinBlockWidth, MaxBlockWidth)
		}
	}
}

func TestDetectFeaturesStable(t *testing.T) {
	t.Parallel()

	a := DetectFeatures()
	b := DetectFeatures()

	if a != b {
		t.Errorf("DetectFeatures not stable: %+v vs %+v", a, b)
	}

	if a.Architecture == "" {
		t.Error("Architecture is empty")
	}

	if a.Level().String() == "unknown" {
		t.Errorf("Level() = %v", a.Level())
	}
}
