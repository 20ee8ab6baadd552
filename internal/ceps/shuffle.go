package ceps

import "math/rand"

// Shuffle returns a uniformly random permutation of xs using Fisher–Yates.
// The input slice is not mutated.
func Shuffle(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// GenerateQuestionOrder builds a random presentation order over the question
// ids 1..total. Returns an empty order for total <= 0.
func GenerateQuestionOrder(total int) []int {
	if total <= 0 {
		return nil
	}
	ids := make([]int, total)
	for i := range ids {
		ids[i] = i + 1
	}
	return Shuffle(ids)
}
