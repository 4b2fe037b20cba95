package zipkit

import (
	"iter"

	"go.llib.dev/zipkit/internal/errorkitlite"
)

func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

// CollectE collects the values of a failable sequence.
// On a failing sequence it returns the values collected so far along with the merged error.
func CollectE[T any](i SeqE[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var (
		vs   []T
		errs []error
	)
	for v, err := range i {
		if err == nil {
			vs = append(vs, v)
		} else {
			errs = append(errs, err)
		}
	}
	return vs, errorkitlite.Merge(errs...)
}

// First decodes the first value of the sequence then stops the iteration.
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// First2 decodes the first pair of the sequence then stops the iteration.
func First2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	for k, v := range i {
		return k, v, true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

func Last[T any](i iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range i {
		last = v
		ok = true
	}
	return last, ok
}

// Count will iterate over and count the total iterations number.
//
// Good when all you want is to count all the elements in a sequence but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// Head takes the first n element, similarly how the coreutils "head" app works.
func Head[T any](i iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		next, stop := iter.Pull(i)
		defer stop()
		for i := 0; i < n; i++ {
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

// Take will take the next n value from a pull iterator.
func Take[T any](next func() (T, bool), n int) []T {
	var vs []T
	for i := 0; i < n; i++ {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// TakeAll will take all the remaining values from a pull iterator.
func TakeAll[T any](next func() (T, bool)) []T {
	var vs []T
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}
