package zipkit

import (
	"io"
	"iter"

	"go.llib.dev/zipkit/internal/errorkitlite"
)

// PullIter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
}

// ToPullIter turns a failable sequence into a PullIter.
// Closing the returned iterator stops the underlying sequence.
func ToPullIter[T any](itr SeqE[T]) PullIter[T] {
	next, stop := iter.Pull2(itr)
	return &pullIter[T]{next: next, stop: stop}
}

// FromPullIter turns a PullIter into a failable sequence.
// The iterator is closed when the sequence terminates,
// and an error from either Err or Close is yielded as the sequence's final step.
func FromPullIter[T any](itr PullIter[T]) SingleUseSeqE[T] {
	return Once2(func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		if err := errorkitlite.Merge(itr.Err(), itr.Close()); err != nil {
			var zero T
			yield(zero, err)
		}
	})
}

// CollectPullIter collects every remaining value of a PullIter, then closes it.
// Errors from Err and Close are merged into the returned error.
func CollectPullIter[T any](itr PullIter[T]) (vs []T, rErr error) {
	defer errorkitlite.Finish(&rErr, itr.Close)
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	return vs, itr.Err()
}

// FromPull turns an iter.Pull style next function into an iter.Seq[T] sequence.
// The optional stop functions are deferred until the sequence terminates.
func FromPull[T any](next func() (T, bool), stops ...func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromPull2 turns an iter.Pull2 style next function into an iter.Seq2[K, V] sequence.
// The optional stop functions are deferred until the sequence terminates.
func FromPull2[K, V any](next func() (K, V, bool), stops ...func()) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			k, v, ok := next()
			if !ok {
				break
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

type pullIter[T any] struct {
	next func() (T, error, bool)
	stop func()
	val  T
	err  error
	done bool
}

func (i *pullIter[T]) Next() bool {
	if i.done || i.err != nil {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		return false
	}
	if err != nil {
		i.err = err
		return false
	}
	i.val = v
	return true
}

func (i *pullIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *pullIter[T]) Err() error {
	return i.err
}

func (i *pullIter[T]) Value() T {
	return i.val
}
