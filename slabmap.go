package flatmapstats

// slabWidth is the number of slots in one logical window.
const slabWidth = 16

type slot struct {
	key  uint64
	used bool
}

// SlabMap simulates the flat slab layout: one slot array logically split
// into 16-wide windows. A key keeps a fixed intra-window offset on every
// probe step, and emptiness inside a window is what tells an unsuccessful
// lookup to stop.
type SlabMap struct {
	slots []slot

	mask    uintptr // len(slots)-1, window scans wrap the whole slab
	winMask uintptr // number of windows - 1
}

// NewSlabMap returns an empty map with the given number of windows,
// normalized up to a power of two.
func NewSlabMap(capacity int) *SlabMap {
	windows := uintptr(NextPowerOf2(uint32(capacity)))

	return &SlabMap{
		slots:   make([]slot, windows*slabWidth),
		mask:    windows*slabWidth - 1,
		winMask: windows - 1,
	}
}

// home returns the slab position the key's probe chain starts from. Its low
// 4 bits are the fixed intra-window offset, the rest selects the window.
func (m *SlabMap) home(key uint64) uintptr {
	return uintptr(key>>7) & m.mask
}

// Insert places the key in the first empty slot of the first probed window
// that has one. Inserting a key that is already present is a no-op and
// reports false.
func (m *SlabMap) Insert(key uint64) (bool, error) {
	if _, ok := m.Find(key); ok {
		return false, nil
	}

	pos := m.home(key)
	off := pos % slabWidth

	pb := newProber(pos / slabWidth)
	for {
		base := pb.offset()*slabWidth + off
		for i := uintptr(0); i < slabWidth; i++ {
			s := &m.slots[(base+i)&m.mask]
			if !s.used {
				s.key = key
				s.used = true

				return true, nil
			}
		}

		if !pb.next(m.winMask) {
			return false, ErrTableFull
		}
	}
}

// Find walks the probe chain over windows, scanning each from the key's
// fixed offset. A miss stops at the first window that still has an empty
// slot. Comparisons count the occupied slots scanned ahead of the match
// point whose low 7 bits collide with the target's.
func (m *SlabMap) Find(key uint64) (Cost, bool) {
	var cost Cost

	pos := m.home(key)
	off := pos % slabWidth

	pb := newProber(pos / slabWidth)
	for {
		base := pb.offset()*slabWidth + off

		match := uintptr(slabWidth)
		for i := uintptr(0); i < slabWidth; i++ {
			s := &m.slots[(base+i)&m.mask]
			if s.used && s.key == key {
				match = i
				break
			}
		}

		for i := uintptr(0); i < match; i++ {
			s := &m.slots[(base+i)&m.mask]
			if s.used && s.key&0x7F == key&0x7F {
				cost.Cmps++
			}
		}

		if match < slabWidth {
			cost.Cmps++
			return cost, true
		}

		if m.windowHasEmpty(base) {
			return cost, false
		}

		cost.Hops++
		if !pb.next(m.winMask) {
			return cost, false
		}
	}
}

func (m *SlabMap) windowHasEmpty(base uintptr) bool {
	for i := uintptr(0); i < slabWidth; i++ {
		if !m.slots[(base+i)&m.mask].used {
			return true
		}
	}

	return false
}

// FullGroupRatio reports the fraction of aligned windows with no empty slot.
func (m *SlabMap) FullGroupRatio() float64 {
	full := 0
	for base := uintptr(0); base < uintptr(len(m.slots)); base += slabWidth {
		if !m.windowHasEmpty(base) {
			full++
		}
	}

	return float64(full) / float64(m.winMask+1)
}

func (m *SlabMap) GroupWidth() int {
	return slabWidth
}
