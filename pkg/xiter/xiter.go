package xiter

import "iter"

// Runes yields the runes of s in order.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// Advance pulls a cursor from seq, advances it once, and reports whether an
// element existed. The cursor is released before returning.
func Advance[T any](seq iter.Seq[T]) bool {
	next, stop := iter.Pull(seq)
	defer stop()

	_, ok := next()

	return ok
}
