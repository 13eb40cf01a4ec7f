package flatmapstats

import (
	"errors"
	"math/bits"
)

// groupWidth is the number of keys a group can hold.
const groupWidth = 15

// ErrTableFull is reported by Insert when the probe sequence is exhausted
// without finding room for the key.
var ErrTableFull = errors.New("flatmapstats: table full")

type group struct {
	// Keys stored inline; only the first n entries are occupied.
	keys [groupWidth]uint64
	n    uintptr

	// One bit per residue class (key mod 8). A set bit means a key of that
	// class may live farther along the probe chain starting here. Bits are
	// only ever set, never cleared.
	overflow uint8
}

// GroupMap simulates the compact grouped layout: groups of up to 15 keys,
// each with an overflow byte that tells unsuccessful lookups whether probing
// has to continue past a full group.
type GroupMap struct {
	groups []group

	mask  uintptr
	shift uintptr
}

// NewGroupMap returns an empty map with the given number of groups,
// normalized up to a power of two.
func NewGroupMap(capacity int) *GroupMap {
	numGroups := uintptr(NextPowerOf2(uint32(capacity)))

	return &GroupMap{
		groups: make([]group, numGroups),
		mask:   numGroups - 1,
		shift:  uintptr(64 - bits.Len(uint(numGroups-1))),
	}
}

// The home group comes from the high-order key bits; the low byte is kept
// for intra-group discrimination.
func (m *GroupMap) home(key uint64) uintptr {
	return uintptr(key >> m.shift)
}

// Insert places the key in the first probed group with room. Inserting a key
// that is already present is a no-op and reports false. Every full group
// passed on the way gets its overflow bit for the key's residue class set.
func (m *GroupMap) Insert(key uint64) (bool, error) {
	if _, ok := m.Find(key); ok {
		return false, nil
	}

	pb := newProber(m.home(key))
	for {
		g := &m.groups[pb.offset()]
		if g.n < groupWidth {
			g.keys[g.n] = key
			g.n++

			return true, nil
		}

		g.overflow |= 1 << (key % 8)

		if !pb.next(m.mask) {
			return false, ErrTableFull
		}
	}
}

// Find walks the probe chain from the key's home group and reports whether
// the key is present, together with the hops and comparisons the lookup cost.
// A miss stops at the first group whose overflow bit for the key's residue
// class is unset.
func (m *GroupMap) Find(key uint64) (Cost, bool) {
	var cost Cost
	rh := reducedHash(key)

	pb := newProber(m.home(key))
	for {
		g := &m.groups[pb.offset()]

		match := g.n
		for i := uintptr(0); i < g.n; i++ {
			if g.keys[i] == key {
				match = i
				break
			}
		}

		// Keys scanned ahead of the match point only cost a comparison when
		// their reduced discriminant collides with the target's.
		for i := uintptr(0); i < match; i++ {
			if reducedHash(g.keys[i]) == rh {
				cost.Cmps++
			}
		}

		if match < g.n {
			cost.Cmps++
			return cost, true
		}

		if g.overflow&(1<<(key%8)) == 0 {
			return cost, false
		}

		cost.Hops++
		if !pb.next(m.mask) {
			return cost, false
		}
	}
}

// FullGroupRatio reports the fraction of groups holding groupWidth keys.
func (m *GroupMap) FullGroupRatio() float64 {
	full := 0
	for i := range m.groups {
		if m.groups[i].n == groupWidth {
			full++
		}
	}

	return float64(full) / float64(len(m.groups))
}

func (m *GroupMap) GroupWidth() int {
	return groupWidth
}

// reducedHash is the low byte of the key, with 0 and 1 remapped to 8 and 9
// to keep the reserved byte values free.
func reducedHash(key uint64) uint8 {
	switch h := uint8(key); h {
	case 0:
		return 8
	case 1:
		return 9
	default:
		return h
	}
}
