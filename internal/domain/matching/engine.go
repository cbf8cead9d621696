// Package matching holds the compatibility heuristic between two workout
// profiles. It is a pure function over profile snapshots; persistence and
// transport know nothing about it and it knows nothing about them.
package matching

import "strings"

// Profile is the slice of a user that scoring looks at. Nil height or
// weight means the field is unset and its term contributes nothing.
type Profile struct {
	Height *int
	Weight *int
	Goal   string
}

const (
	baseScore = 50
	maxScore  = 100
)

// Score returns an integer in [0,100]:
//
//	base 50
//	+10/+5/+0 for height difference <=10 / <=20 / otherwise
//	+10/+5/+0 for weight difference, same rule
//	+30 if one goal contains the other (case-insensitive),
//	else +15 if any token of a's goal appears in b's goal, else +0
//
// The goal token term is directional (a's tokens are searched in b's goal),
// so Score(a, b) and Score(b, a) can differ by 15 on asymmetric goals.
func Score(a, b Profile) int {
	score := baseScore
	score += proximityTerm(a.Height, b.Height)
	score += proximityTerm(a.Weight, b.Weight)
	score += goalTerm(a.Goal, b.Goal)

	if score > maxScore {
		score = maxScore
	}
	return score
}

func proximityTerm(a, b *int) int {
	if a == nil || b == nil {
		return 0
	}
	d := *a - *b
	if d < 0 {
		d = -d
	}
	switch {
	case d <= 10:
		return 10
	case d <= 20:
		return 5
	default:
		return 0
	}
}

func goalTerm(a, b string) int {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return 0
	}

	if strings.Contains(lb, la) || strings.Contains(la, lb) {
		return 30
	}

	for _, word := range strings.Fields(la) {
		if strings.Contains(lb, word) {
			return 15
		}
	}
	return 0
}
