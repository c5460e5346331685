// Package proficiency holds the update rule that folds one attempt's
// score into a user's stored skill proficiency.
package proficiency

const (
	// HistoryWeight is the share of the previous estimate kept on update.
	HistoryWeight = 0.7
	// RecentWeight is the share contributed by the new attempt.
	RecentWeight = 0.3
)

// Initial returns the proficiency written the first time a user touches
// a skill: the attempt score scaled by the skill's relevance to the
// challenge.
func Initial(score, relevance float64) float64 {
	return score * relevance
}

// Update folds a new attempt into an existing proficiency estimate with
// an exponential moving average. History dominates so a single outlier
// attempt cannot swing the estimate. The result is not clamped: score
// and relevance are each in [0,1], which keeps it near that range in
// practice.
func Update(old, score, relevance float64) float64 {
	return old*HistoryWeight + score*relevance*RecentWeight
}
