package scoring

// reductionStep is the fixed multiplicative shrinkage applied once per
// effectiveness point: each point leaves 90% of what remains.
const reductionStep = 0.9

const (
	minRating = 0
	maxRating = 5
)

// Reduce applies a sequence of control effectiveness ratings to an
// initial value using compound (diminishing-returns) reduction: for each
// rating e, the remaining value is multiplied by 0.9 e times. Stacking
// controls never sums their nominal effectiveness; each additional
// control shrinks only what remains.
//
// An empty rating list returns initial unchanged. Ratings outside 0-5
// are clamped, not rejected. The result is not floored or rounded;
// callers decide how to map back to discrete tiers.
func Reduce(initial float64, ratings []int) float64 {
	remaining := initial
	for _, rating := range ratings {
		e := clampRating(rating)
		for i := 0; i < e; i++ {
			remaining *= reductionStep
		}
	}
	return remaining
}

func clampRating(e int) int {
	if e < minRating {
		return minRating
	}
	if e > maxRating {
		return maxRating
	}
	return e
}
