package zipkit

import (
	"fmt"
	"iter"
	"sync"

	"go.llib.dev/zipkit/internal/errorkitlite"
)

// AsSeqE will turn an iter.Seq[T] into a SeqE[T] sequence,
// and use the given error functions to yield a potential issue with the iteration.
func AsSeqE[T any](i iter.Seq[T], errFuncs ...ErrFunc) SeqE[T] {
	return func(yield func(T, error) bool) {
		for v := range i {
			if !yield(v, nil) {
				return
			}
		}
		if 0 < len(errFuncs) {
			errFunc := errorkitlite.MergeErrFunc(errFuncs...)
			if err := errFunc(); err != nil {
				var zero T
				yield(zero, err)
			}
		}
	}
}

// SplitSeqE will split a SeqE[T] sequence into an iter.Seq[T] sequence plus an error retrieval func.
// The error retrieval func reports the errors observed during the last iteration of the value sequence.
func SplitSeqE[T any](i SeqE[T]) (iter.Seq[T], ErrFunc) {
	var m sync.RWMutex
	var errors []error
	return func(yield func(T) bool) {
			m.Lock()
			errors = nil
			m.Unlock()
			for v, err := range i {
				if err != nil {
					m.Lock()
					errors = append(errors, err)
					m.Unlock()
					continue
				}
				if !yield(v) {
					return
				}
			}
		},
		func() error {
			m.RLock()
			defer m.RUnlock()
			return errorkitlite.Merge(errors...)
		}
}

// Error returns a SeqE[T] that yields no value, only the given error.
func Error[T any](err error) SeqE[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// ErrorF behaves exactly like fmt.Errorf but returns the error wrapped as a sequence.
func ErrorF[T any](format string, a ...any) SeqE[T] {
	return Error[T](fmt.Errorf(format, a...))
}
