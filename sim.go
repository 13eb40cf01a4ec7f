package flatmapstats

import (
	"fmt"
)

// Table is the surface the driver needs from a simulated map layout.
type Table interface {
	Insert(key uint64) (bool, error)
	Find(key uint64) (Cost, bool)
	FullGroupRatio() float64
	GroupWidth() int
}

var (
	_ Table = (*GroupMap)(nil)
	_ Table = (*SlabMap)(nil)
)

// Config drives one sweep. Zero values fall back to the defaults, which
// match the reference experiment: 0x20000 groups, 101 points up to load
// factor 0.875, seed 0 for the insert/hit passes and seed 1 for misses.
type Config struct {
	Capacity   int
	Points     int
	MaxLoad    float64
	InsertSeed uint64
	MissSeed   uint64
}

const (
	DefaultCapacity = 0x20000
	DefaultPoints   = 101
	DefaultMaxLoad  = 0.875
	DefaultMissSeed = 1
)

func (c Config) normalized() Config {
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	c.Capacity = int(NextPowerOf2(uint32(c.Capacity)))

	if c.Points <= 0 {
		c.Points = DefaultPoints
	}
	if c.MaxLoad <= 0 {
		c.MaxLoad = DefaultMaxLoad
	}
	if c.MissSeed == 0 {
		c.MissSeed = DefaultMissSeed
	}

	return c
}

// Row is one measured load-factor point.
type Row struct {
	LoadFactor float64 `json:"load_factor"`
	FullRatio  float64 `json:"pr_group_full"`
	HitHops    float64 `json:"hit_hops"`
	HitCmps    float64 `json:"hit_cmps"`
	MissHops   float64 `json:"miss_hops"`
	MissCmps   float64 `json:"miss_cmps"`
}

// Result holds the rows of one labeled sweep.
type Result struct {
	Label string `json:"label"`
	Rows  []Row  `json:"rows"`
}

// Sweep measures the layout produced by build across evenly spaced load
// factors from 0 up to cfg.MaxLoad, one fresh table per point.
func Sweep(cfg Config, label string, build func(capacity int) Table) (*Result, error) {
	cfg = cfg.normalized()

	steps := cfg.Points - 1
	if steps < 1 {
		steps = 1
	}

	res := &Result{Label: label, Rows: make([]Row, 0, cfg.Points)}
	for i := 0; i < cfg.Points; i++ {
		lf := cfg.MaxLoad * float64(i) / float64(steps)

		row, err := measure(cfg, lf, build(cfg.Capacity))
		if err != nil {
			return nil, fmt.Errorf("load factor %v: %w", lf, err)
		}

		res.Rows = append(res.Rows, row)
	}

	return res, nil
}

// measure fills the table to the target load, then runs the matched hit and
// miss lookup passes.
func measure(cfg Config, lf float64, t Table) (Row, error) {
	target := int(float64(cfg.Capacity) * lf * float64(t.GroupWidth()))

	// Duplicate draws fail to insert and are simply redrawn.
	keys := NewKeyStream(cfg.InsertSeed)
	for n := 0; n < target; {
		ok, err := t.Insert(keys.Next())
		if err != nil {
			return Row{}, err
		}
		if ok {
			n++
		}
	}

	row := Row{LoadFactor: lf, FullRatio: t.FullGroupRatio()}

	// Replaying the insert seed guarantees every drawn key is present.
	var hit Cost
	keys.Reset(cfg.InsertSeed)
	for n := 0; n < target; n++ {
		key := keys.Next()

		cost, ok := t.Find(key)
		if !ok {
			return Row{}, fmt.Errorf("inserted key %#x not found", key)
		}

		hit.Add(cost)
	}

	// Draws that happen to hit are discarded; only confirmed misses count.
	var miss Cost
	keys.Reset(cfg.MissSeed)
	for n := 0; n < target; {
		cost, ok := t.Find(keys.Next())
		if !ok {
			miss.Add(cost)
			n++
		}
	}

	if target > 0 {
		d := float64(target)
		row.HitHops = float64(hit.Hops) / d
		row.HitCmps = float64(hit.Cmps) / d
		row.MissHops = float64(miss.Hops) / d
		row.MissCmps = float64(miss.Cmps) / d
	}

	return row, nil
}
