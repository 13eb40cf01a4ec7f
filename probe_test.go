package flatmapstats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProber_Permutation(t *testing.T) {
	masks := []uintptr{0, 1, 3, 7, 15, 63, 255}

	for _, mask := range masks {
		for start := uintptr(0); start <= mask; start++ {
			pb := newProber(start)

			seen := make(map[uintptr]bool, mask+1)
			seen[pb.offset()] = true

			for pb.next(mask) {
				require.Falsef(t, seen[pb.offset()],
					"index %d repeated before the cycle ended (mask=%d start=%d)",
					pb.offset(), mask, start)

				seen[pb.offset()] = true
			}

			require.Len(t, seen, int(mask)+1)
		}
	}
}

func TestProber_Exhaustion(t *testing.T) {
	const mask = uintptr(7)

	pb := newProber(3)
	for i := uintptr(0); i < mask; i++ {
		require.True(t, pb.next(mask))
	}

	// The cycle covered all mask+1 indices; every further advance reports
	// exhaustion.
	require.False(t, pb.next(mask))
	require.False(t, pb.next(mask))
}

func TestProber_SingleSlot(t *testing.T) {
	pb := newProber(0)

	require.Equal(t, uintptr(0), pb.offset())
	require.False(t, pb.next(0))
	require.Equal(t, uintptr(0), pb.offset())
}
