package zipkit

import (
	"iter"

	"go.llib.dev/zipkit/port/option"
)

// Pair is the product of a single zip step over two sequences.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is the product of a single zip step over three sequences.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Quad is the product of a single zip step over four sequences.
type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Zip2 pairs up the successive elements of two sequences.
//
// The returned sequence is lazy and single use.
// On each step the sources are pulled in argument order, one element from each,
// and iteration terminates when the first source is exhausted.
// Without options, leftover elements of a longer source are silently ignored,
// the same way conventional zipping truncates to the shortest source.
//
// With the Strict option, unequal source lengths yield a LengthMismatchError instead:
// a source that runs out while an earlier one still produced a value is reported as TooShort,
// and when the first source is the one that ran out,
// each remaining source is probed with a single extra pull
// to confirm none of them was left with a pending element,
// reporting the first such source as TooLong.
// Outside this probing, no source is ever pulled further than the yielded tuples required,
// and abandoning the iteration early leaves the sources untouched.
func Zip2[A, B any](a iter.Seq[A], b iter.Seq[B], opts ...ZipOption) SingleUseSeqE[Pair[A, B]] {
	conf := option.Use(opts)
	return Once2(func(yield func(Pair[A, B], error) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		var zero Pair[A, B]
		for {
			av, ok := nextA()
			if !ok {
				if conf.Strict {
					if _, ok := nextB(); ok {
						yield(zero, LengthMismatchError{Position: 2, Reason: TooLong})
					}
				}
				return
			}
			bv, ok := nextB()
			if !ok {
				if conf.Strict {
					yield(zero, LengthMismatchError{Position: 2, Reason: TooShort})
				}
				return
			}
			if !yield(Pair[A, B]{A: av, B: bv}, nil) {
				return
			}
		}
	})
}

// Zip3 zips the successive elements of three sequences.
// For the semantics of zipping and the Strict option, see Zip2.
func Zip3[A, B, C any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], opts ...ZipOption) SingleUseSeqE[Triple[A, B, C]] {
	conf := option.Use(opts)
	return Once2(func(yield func(Triple[A, B, C], error) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		nextC, stopC := iter.Pull(c)
		defer stopC()
		var zero Triple[A, B, C]
		for {
			av, ok := nextA()
			if !ok {
				if conf.Strict {
					if _, ok := nextB(); ok {
						yield(zero, LengthMismatchError{Position: 2, Reason: TooLong})
						return
					}
					if _, ok := nextC(); ok {
						yield(zero, LengthMismatchError{Position: 3, Reason: TooLong})
						return
					}
				}
				return
			}
			bv, ok := nextB()
			if !ok {
				if conf.Strict {
					yield(zero, LengthMismatchError{Position: 2, Reason: TooShort})
				}
				return
			}
			cv, ok := nextC()
			if !ok {
				if conf.Strict {
					yield(zero, LengthMismatchError{Position: 3, Reason: TooShort})
				}
				return
			}
			if !yield(Triple[A, B, C]{A: av, B: bv, C: cv}, nil) {
				return
			}
		}
	})
}

// Zip4 zips the successive elements of four sequences.
// For the semantics of zipping and the Strict option, see Zip2.
func Zip4[A, B, C, D any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C], d iter.Seq[D], opts ...ZipOption) SingleUseSeqE[Quad[A, B, C, D]] {
	conf := option.Use(opts)
	return Once2(func(yield func(Quad[A, B, C, D], error) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		nextC, stopC := iter.Pull(c)
		defer stopC()
		nextD, stopD := iter.Pull(d)
		defer stopD()
		var zero Quad[A, B, C, D]
		for {
			av, ok := nextA()
			if !ok {
				if conf.Strict {
					if _, ok := nextB(); ok {
						yield(zero, LengthMismatchError{Position: 2, Reason: TooLong})
						return
					}
					if _, ok := nextC(); ok {
						yield(zero, LengthMismatchError{Position: 3, Reason: TooLong})
						return
					}
					if _, ok := nextD(); ok {
						yield(zero, LengthMismatchError{Position: 4, Reason: TooLong})
						return
					}
				}
				return
			}
			bv, ok := nextB()
			if !ok {
				if conf.Strict {
					yield(zero, LengthMismatchError{Position: 2, Reason: TooShort})
				}
				return
			}
			cv, ok := nextC()
			if !ok {
				if conf.Strict {
					yield(zero, LengthMismatchError{Position: 3, Reason: TooShort})
				}
				return
			}
			dv, ok := nextD()
			if !ok {
				if conf.Strict {
					yield(zero, LengthMismatchError{Position: 4, Reason: TooShort})
				}
				return
			}
			if !yield(Quad[A, B, C, D]{A: av, B: bv, C: cv, D: dv}, nil) {
				return
			}
		}
	})
}

// ZipN zips an arbitrary number of same-typed sequences,
// yielding a tuple slice whose elements follow the source argument order.
// Zipping zero sources yields an immediately empty sequence regardless of options.
// For the semantics of zipping and the Strict option, see Zip2.
func ZipN[T any](srcs []iter.Seq[T], opts ...ZipOption) SingleUseSeqE[[]T] {
	conf := option.Use(opts)
	if len(srcs) == 0 {
		return Once2(Empty2[[]T, error]())
	}
	return Once2(func(yield func([]T, error) bool) {
		var nexts = make([]func() (T, bool), 0, len(srcs))
		for _, src := range srcs {
			next, stop := iter.Pull(src)
			defer stop()
			nexts = append(nexts, next)
		}
		for {
			var vs = make([]T, 0, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if ok {
					vs = append(vs, v)
					continue
				}
				if i == 0 {
					if conf.Strict {
						for j := 1; j < len(nexts); j++ {
							if _, ok := nexts[j](); ok {
								yield(nil, LengthMismatchError{Position: j + 1, Reason: TooLong})
								return
							}
						}
					}
					return
				}
				if conf.Strict {
					yield(nil, LengthMismatchError{Position: i + 1, Reason: TooShort})
				}
				return
			}
			if !yield(vs, nil) {
				return
			}
		}
	})
}
