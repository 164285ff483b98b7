package impl

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldNewRating(t *testing.T) {
	tests := []struct {
		name   string
		agg    RatingAggregate
		rating int
		want   RatingAggregate
	}{
		{name: "first rating", agg: RatingAggregate{}, rating: 4, want: RatingAggregate{Avg: 4, Count: 1}},
		{name: "second rating", agg: RatingAggregate{Avg: 4, Count: 1}, rating: 5, want: RatingAggregate{Avg: 4.5, Count: 2}},
		{name: "repeating decimal", agg: RatingAggregate{Avg: 4.5, Count: 2}, rating: 5, want: RatingAggregate{Avg: 4.67, Count: 3}},
		{name: "round half up", agg: RatingAggregate{Avg: 4, Count: 7}, rating: 5, want: RatingAggregate{Avg: 4.13, Count: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FoldNewRating(tt.agg, tt.rating)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Avg, got.Avg, 1e-9)
		})
	}
}

func TestFoldUpdatedRating(t *testing.T) {
	t.Run("count unchanged and mean shifts by delta over count", func(t *testing.T) {
		agg := RatingAggregate{Avg: 4, Count: 4}
		got := FoldUpdatedRating(agg, 2, 5)

		assert.Equal(t, 4, got.Count)
		assert.InDelta(t, 4+float64(5-2)/4, got.Avg, 1e-9)
	})

	t.Run("empty aggregate restarts from the new rating", func(t *testing.T) {
		got := FoldUpdatedRating(RatingAggregate{}, 3, 2)

		assert.Equal(t, RatingAggregate{Avg: 2, Count: 1}, got)
	})
}

func TestFoldNewRating_TracksTrueMean(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for run := 0; run < 50; run++ {
		agg := RatingAggregate{}
		sum := 0
		n := 1 + rng.IntN(15)

		for i := 0; i < n; i++ {
			r := 1 + rng.IntN(5)
			sum += r
			agg = FoldNewRating(agg, r)

			assert.GreaterOrEqual(t, agg.Avg, 1.0)
			assert.LessOrEqual(t, agg.Avg, 5.0)
		}

		assert.Equal(t, n, agg.Count)
		// Rounding at every step may drift from the rounded true mean by at most a cent per fold.
		assert.InDelta(t, roundRating(float64(sum)/float64(n)), agg.Avg, 0.01*float64(n))
	}
}
