package zipkit

import (
	"iter"
	"slices"
	"sync/atomic"
)

func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

// Empty iterator is used to represent a nil result with the Null object pattern.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Empty2 iterator is used to represent a nil result with the Null object pattern.
func Empty2[T1, T2 any]() iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {}
}

// SingleValue creates an iterator that yields one single element.
func SingleValue[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

// Chan creates an iterator out from a channel.
// The returned sequence shares the consumption of the channel with any other receiver.
func Chan[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if ch == nil {
			return
		}
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; begin+i < end+1; i++ {
			if !yield(begin + i) {
				break
			}
		}
	}
}

// CharRange returns an iterator that will range between the specified `begin` and the `end` rune.
func CharRange(begin, end rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for i := rune(0); begin+i < end+1; i++ {
			if !yield(begin + i) {
				break
			}
		}
	}
}

// Once ensures a sequence is iterated at most once,
// turning any iter.Seq[T] into a SingleUseSeq[T].
// Iterating an already consumed sequence yields no values.
func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done int32
	return func(yield func(T) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}

// Once2 ensures a sequence is iterated at most once,
// turning any iter.Seq2[K, V] into a SingleUseSeq2[K, V].
// Iterating an already consumed sequence yields no values.
func Once2[K, V any](i iter.Seq2[K, V]) SingleUseSeq2[K, V] {
	var done int32
	return func(yield func(K, V) bool) {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return
		}
		for k, v := range i {
			if !yield(k, v) {
				return
			}
		}
	}
}
