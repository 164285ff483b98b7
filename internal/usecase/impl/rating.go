package impl

import "math"

// RatingAggregate is the running mean of a provider's ratings.
type RatingAggregate struct {
	Avg   float64
	Count int
}

// FoldNewRating adds one rating to the aggregate.
func FoldNewRating(agg RatingAggregate, rating int) RatingAggregate {
	count := agg.Count + 1
	avg := (agg.Avg*float64(agg.Count) + float64(rating)) / float64(count)

	return RatingAggregate{Avg: roundRating(avg), Count: count}
}

// FoldUpdatedRating replaces oldRating with newRating in the aggregate. The count is unchanged,
// except that an empty aggregate restarts from the new rating alone.
func FoldUpdatedRating(agg RatingAggregate, oldRating, newRating int) RatingAggregate {
	if agg.Count <= 0 {
		return RatingAggregate{Avg: roundRating(float64(newRating)), Count: 1}
	}

	avg := (agg.Avg*float64(agg.Count) - float64(oldRating) + float64(newRating)) / float64(agg.Count)

	return RatingAggregate{Avg: roundRating(avg), Count: agg.Count}
}

// roundRating rounds half away from zero to two decimals.
func roundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
