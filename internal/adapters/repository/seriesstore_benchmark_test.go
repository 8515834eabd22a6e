package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/okian/rinkrank/internal/domain/model"
)

// seededStore builds a store shaped like a full historical run: one
// standings list per year from 1910 on, a few dozen teams each.
func seededStore(b *testing.B, years, teams int) *SeriesStore {
	b.Helper()
	ctx := context.Background()
	store := NewSeriesStore(WithYearsHint(years))
	for y := 0; y < years; y++ {
		standings := make([]model.RankingEntry, teams)
		for i := 0; i < teams; i++ {
			standings[i] = model.RankingEntry{
				Rank:   i + 1,
				Team:   fmt.Sprintf("T%03d", i),
				Year:   1910 + y,
				Points: 1000 - i*10,
			}
		}
		if err := store.PutYear(ctx, 1910+y, standings); err != nil {
			b.Fatal(err)
		}
	}
	return store
}

func BenchmarkSeriesStorePutYear(b *testing.B) {
	ctx := context.Background()
	standings := make([]model.RankingEntry, 48)
	for i := range standings {
		standings[i] = model.RankingEntry{Rank: i + 1, Team: fmt.Sprintf("T%03d", i), Points: 1000 - i*10}
	}

	store := NewSeriesStore()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.PutYear(ctx, 1910+i%128, standings); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSeriesStoreTopN(b *testing.B) {
	ctx := context.Background()
	store := seededStore(b, 116, 48)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(1))
		for pb.Next() {
			year := 1910 + r.Intn(116)
			if _, err := store.TopN(ctx, year, 10); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSeriesStoreRank(b *testing.B) {
	ctx := context.Background()
	store := seededStore(b, 116, 48)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(2))
		for pb.Next() {
			year := 1910 + r.Intn(116)
			team := fmt.Sprintf("T%03d", r.Intn(48))
			if _, err := store.Rank(ctx, year, team); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSeriesStoreSeries(b *testing.B) {
	ctx := context.Background()
	store := seededStore(b, 116, 48)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.Series(ctx, "T010"); err != nil {
			b.Fatal(err)
		}
	}
}
