package internal

import (
	"iter"
)

// Concat yields every value of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Single is a sequence of exactly one value.
func Single[T any](val T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(val)
	}
}
