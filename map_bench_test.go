package flatmapstats

import (
	"testing"
)

const (
	benchCapacity = 1 << 10
	benchLoad     = 0.5
)

func benchFill(b *testing.B, t Table, load float64) []uint64 {
	b.Helper()

	target := int(float64(benchCapacity) * load * float64(t.GroupWidth()))
	keys := make([]uint64, 0, target)

	ks := NewKeyStream(0)
	for len(keys) < target {
		key := ks.Next()

		ok, err := t.Insert(key)
		if err != nil {
			b.Fatal(err)
		}
		if ok {
			keys = append(keys, key)
		}
	}

	return keys
}

func benchmarkFindHit(build func(capacity int) Table) func(b *testing.B) {
	return func(b *testing.B) {
		t := build(benchCapacity)
		keys := benchFill(b, t, benchLoad)

		var total Cost
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			cost, _ := t.Find(keys[i%len(keys)])
			total.Add(cost)
		}
	}
}

func benchmarkFindMiss(build func(capacity int) Table) func(b *testing.B) {
	return func(b *testing.B) {
		t := build(benchCapacity)
		benchFill(b, t, benchLoad)

		ks := NewKeyStream(1)
		var total Cost
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			cost, _ := t.Find(ks.Next())
			total.Add(cost)
		}
	}
}

func BenchmarkFind_Hit(b *testing.B) {
	b.Run("variant=groupMap", benchmarkFindHit(buildGroupMap))
	b.Run("variant=slabMap", benchmarkFindHit(buildSlabMap))
}

func BenchmarkFind_Miss(b *testing.B) {
	b.Run("variant=groupMap", benchmarkFindMiss(buildGroupMap))
	b.Run("variant=slabMap", benchmarkFindMiss(buildSlabMap))
}
