package zipkit

import (
	"iter"
)

// Zipped is a single step of a longest-mode zip.
// The OK flags report whether the corresponding source still produced its value,
// or the value is just the type's zero value standing in for an already exhausted source.
type Zipped[A, B any] struct {
	A   A
	AOK bool
	B   B
	BOK bool
}

// ZipLongest2 pairs up the successive elements of two sequences,
// continuing until every source is exhausted.
//
// It is the counterpart of Zip2 for when the longer source's leftover elements matter:
// after a source runs out, its side of the Zipped value is the zero value with an unset OK flag.
// The returned sequence is lazy and single use.
func ZipLongest2[A, B any](a iter.Seq[A], b iter.Seq[B]) SingleUseSeq[Zipped[A, B]] {
	return Once(func(yield func(Zipped[A, B]) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		for {
			var z Zipped[A, B]
			z.A, z.AOK = nextA()
			z.B, z.BOK = nextB()
			if !z.AOK && !z.BOK {
				return
			}
			if !yield(z) {
				return
			}
		}
	})
}

// ZipLongestN zips an arbitrary number of same-typed sequences,
// continuing until every source is exhausted.
// Elements of already exhausted sources are substituted with the fill value.
func ZipLongestN[T any](fill T, srcs ...iter.Seq[T]) SingleUseSeq[[]T] {
	if len(srcs) == 0 {
		return Once(Empty[[]T]())
	}
	return Once(func(yield func([]T) bool) {
		var nexts = make([]func() (T, bool), 0, len(srcs))
		for _, src := range srcs {
			next, stop := iter.Pull(src)
			defer stop()
			nexts = append(nexts, next)
		}
		for {
			var (
				vs    = make([]T, 0, len(nexts))
				alive int
			)
			for _, next := range nexts {
				v, ok := next()
				if ok {
					alive++
					vs = append(vs, v)
					continue
				}
				vs = append(vs, fill)
			}
			if alive == 0 {
				return
			}
			if !yield(vs) {
				return
			}
		}
	})
}
