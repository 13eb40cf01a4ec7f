package flatmapstats

import (
	"math/bits"
	"unsafe"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// Estimates the number of grouped-map groups that fit in the given memory
// size in bytes.
func GroupMapGroupsFromSize(size uintptr) int {
	return int(size / unsafe.Sizeof(group{}))
}

// Estimates the number of slab-map windows that fit in the given memory
// size in bytes.
func SlabMapGroupsFromSize(size uintptr) int {
	return int(size / (slabWidth * unsafe.Sizeof(slot{})))
}
