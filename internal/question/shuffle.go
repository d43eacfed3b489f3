package question

import "math/rand"

// Shuffled returns the questions of an assessment in a randomized
// presentation order. The assessment's canonical question order is never
// modified; widget identity always follows the canonical order.
func Shuffled(a Assessment, r *rand.Rand) []Question {
	shuffled := make([]Question, len(a.Questions))
	copy(shuffled, a.Questions)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
