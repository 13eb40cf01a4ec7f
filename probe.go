package flatmapstats

// prober walks the quadratic probe sequence over a power-of-two index space.
//
// Each advance grows the step by one, so positions follow the triangular
// numbers relative to the start: start, start+1, start+3, start+6, ...
// Masked to a power-of-two size this visits every index exactly once before
// the sequence would repeat.
type prober struct {
	pos  uintptr
	step uintptr
}

func newProber(pos uintptr) prober {
	return prober{pos: pos}
}

// offset returns the current candidate index.
func (p *prober) offset() uintptr {
	return p.pos
}

// next moves to the following candidate index for a table of size mask+1.
// Returns false once the full cycle has been exhausted, i.e. every index has
// already been visited.
func (p *prober) next(mask uintptr) bool {
	p.step++
	p.pos = (p.pos + p.step) & mask

	return p.step <= mask
}
