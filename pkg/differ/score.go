package differ

// Score converts an edit script into a change ratio in [0,1]:
// (added + removed) / (old line total + new line total). The denominator
// counts unchanged lines from both sides; it is not a Jaccard-style
// metric. A script with a combined line count of zero scores 0.
func Score(script []Line) float64 {
	var added, removed, unchanged int
	for _, line := range script {
		switch line.Op {
		case OpAdded:
			added++
		case OpRemoved:
			removed++
		default:
			unchanged++
		}
	}

	total := (unchanged + removed) + (unchanged + added)
	if total == 0 {
		return 0
	}
	return float64(added+removed) / float64(total)
}

// Threshold derives the alert threshold from a caller-supplied
// sensitivity in [0,1]. Higher sensitivity means a lower threshold and
// stricter alerting; the inversion is intentional and load-bearing.
func Threshold(sensitivity float64) float64 {
	return 1 - sensitivity
}

// Decide reports whether a change ratio triggers an alert. Equality to
// the threshold does not alert.
func Decide(score, threshold float64) bool {
	return score > threshold
}
