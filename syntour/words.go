package syntour

import (
	"strings"

	"github.com/samber/lo"
)

// Sentence is the fixed input for the word length demonstration.
const Sentence = "the quick brown fox jumps over the lazy dog"

// WordLengths splits sentence on single spaces and returns the character
// length of each word.
func WordLengths(sentence string) []int {
	return lo.Map(strings.Split(sentence, " "), func(word string, _ int) int {
		return len(word)
	})
}

// AverageWordLength returns the arithmetic mean of the word lengths as a float.
func AverageWordLength(sentence string) float64 {
	return lo.MeanBy(strings.Split(sentence, " "), func(word string) float64 {
		return float64(len(word))
	})
}
