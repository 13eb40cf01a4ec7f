package main

import (
	"fmt"
	"io"
	"os"

	"github.com/segmentio/cli"

	"github.com/joaquintides/flatmapstats"
)

type runFlags struct {
	_          struct{} `help:"Sweep load factors and report probing statistics for the grouped and slab open-addressing layouts"`
	Capacity   int      `flag:"-c,--capacity" help:"Number of groups per table" default:"131072"`
	MemBudget  int      `flag:"-m,--mem-budget" help:"Size each table from a memory budget in bytes instead of --capacity" default:"0"`
	Points     int      `flag:"-n,--points" help:"Number of load-factor samples" default:"101"`
	MaxLoad    float64  `flag:"-l,--max-load" help:"Highest load factor swept" default:"0.875"`
	InsertSeed uint64   `flag:"--insert-seed" help:"Seed for the insert and successful-lookup passes" default:"0"`
	MissSeed   uint64   `flag:"--miss-seed" help:"Seed for the unsuccessful-lookup pass" default:"1"`
	Format     string   `flag:"-f,--format" help:"Output format: csv, table or json" default:"csv"`
	Variant    string   `flag:"-v,--variant" help:"Layout to simulate: grouped, slab or both" default:"both"`
}

type variant struct {
	name     string
	label    string
	build    func(capacity int) flatmapstats.Table
	capacity func(memBudget uintptr) int
}

var variants = []variant{
	{
		name:  "grouped",
		label: "grouped map (15-wide groups, overflow byte)",
		build: func(capacity int) flatmapstats.Table {
			return flatmapstats.NewGroupMap(capacity)
		},
		capacity: flatmapstats.GroupMapGroupsFromSize,
	},
	{
		name:  "slab",
		label: "slab map (16-wide windows, empty sentinel)",
		build: func(capacity int) flatmapstats.Table {
			return flatmapstats.NewSlabMap(capacity)
		},
		capacity: flatmapstats.SlabMapGroupsFromSize,
	},
}

var formats = map[string]func(io.Writer, *flatmapstats.Result) error{
	"csv":   flatmapstats.WriteDelimited,
	"table": flatmapstats.WriteTable,
	"json":  flatmapstats.WriteJSON,
}

func main() {
	cli.Exec(cli.Command(run))
}

func run(flags runFlags) error {
	write, ok := formats[flags.Format]
	if !ok {
		return fmt.Errorf("unknown format %q (want csv, table or json)", flags.Format)
	}

	ran := false
	for _, v := range variants {
		if flags.Variant != "both" && flags.Variant != v.name {
			continue
		}
		ran = true

		cfg := flatmapstats.Config{
			Capacity:   flags.Capacity,
			Points:     flags.Points,
			MaxLoad:    flags.MaxLoad,
			InsertSeed: flags.InsertSeed,
			MissSeed:   flags.MissSeed,
		}
		if flags.MemBudget > 0 {
			cfg.Capacity = v.capacity(uintptr(flags.MemBudget))
		}

		res, err := flatmapstats.Sweep(cfg, v.label, v.build)
		if err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}

		if err := write(os.Stdout, res); err != nil {
			return err
		}
	}

	if !ran {
		return fmt.Errorf("unknown variant %q (want grouped, slab or both)", flags.Variant)
	}

	return nil
}
