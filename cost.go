package flatmapstats

// Cost tallies the work done by lookups: one hop per probe step past the
// home group, one cmp per stored key tested against the target.
type Cost struct {
	Hops uint64
	Cmps uint64
}

// Add accumulates another lookup's counters in place.
func (c *Cost) Add(other Cost) {
	c.Hops += other.Hops
	c.Cmps += other.Cmps
}
