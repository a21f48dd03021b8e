package search

// lengthPenaltyWeight scales the penalty applied when pattern and text
// lengths diverge, so short patterns cannot score highly against much
// longer strings.
const lengthPenaltyWeight = 0.5

// FuzzyScore returns an ordered-subsequence similarity between pattern
// and text in [0, 1].
//
// The scan is a single greedy left-to-right pass: the pattern cursor
// advances whenever the current text rune equals the current pattern
// rune. It is not edit distance — transposed characters score lower than
// a true fuzzy matcher would, and that ranking behavior is kept on
// purpose since callers depend on it.
//
// An empty pattern scores 1; empty text scores 0.
func FuzzyScore(pattern, text string) float64 {
	p := []rune(pattern)
	t := []rune(text)

	if len(p) == 0 {
		return 1
	}
	if len(t) == 0 {
		return 0
	}

	matches := 0
	pi := 0
	for ti := 0; ti < len(t) && pi < len(p); ti++ {
		if p[pi] == t[ti] {
			matches++
			pi++
		}
	}

	matchRatio := float64(matches) / float64(len(p))

	lengthDiff := len(p) - len(t)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	longer := len(p)
	if len(t) > longer {
		longer = len(t)
	}
	lengthPenalty := float64(lengthDiff) / float64(longer)

	score := matchRatio - lengthPenalty*lengthPenaltyWeight
	if score < 0 {
		return 0
	}
	return score
}
