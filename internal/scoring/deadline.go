package scoring

import "time"

// deadlineNeutral is the score for opportunities with no deadline
const deadlineNeutral = 0.5

// DeadlineScore converts days-remaining into an urgency score. Passed
// deadlines score zero; distant ones decay in fixed steps. Unlike the other
// signals this is pure time math, so it is computed inline by the engine
// rather than behind the Scorer interface.
func DeadlineScore(deadline *time.Time, now time.Time) float64 {
	if deadline == nil {
		return deadlineNeutral
	}

	days := int(deadline.Sub(now).Hours() / 24)
	if deadline.Before(now) {
		return 0
	}

	switch {
	case days <= 7:
		return 1.0
	case days <= 30:
		return 0.8
	case days <= 90:
		return 0.6
	case days <= 180:
		return 0.4
	default:
		return 0.2
	}
}
