// Package zipkit provides length-aware zipping of iterator sequences (iter.Seq|iter.Seq2).
//
// # Summary
//
// Zipping combines the successive elements of independently owned sequences into tuples.
// A zipped sequence is lazy; its sources are pulled strictly in argument order,
// one element from each source per step, and never concurrently.
// By default the zipped sequence silently stops at its shortest source,
// which matches the conventional zip behavior.
// Strict zipping instead reports unequal source lengths as a LengthMismatchError,
// which protects against silent data loss when the sources are expected to move in lockstep.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Convolution_(computer_science)
// https://en.wikipedia.org/wiki/Iterator_pattern
package zipkit

import (
	"iter"

	"go.llib.dev/zipkit/internal/errorkitlite"
)

// SeqE is an iterator sequence that represents a failable sequence.
// Each iteration step yields the next value along with the error that occurred at that given step.
// A SeqE is expected to stop yielding values after its first non-nil error.
type SeqE[T any] = iter.Seq2[T, error]

// SingleUseSeq is an iter.Seq[T] that can be only iterated once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// These “single-use iterators” typically report values from a data stream that cannot be rewound to start over.
// Calling the iterator again after stopping early may continue the stream,
// but calling it again after the sequence is finished will yield no values at all.
type SingleUseSeq[T any] = iter.Seq[T]

// SingleUseSeq2 is an iter.Seq2[K, V] that can be only iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseSeq2[K, V any] = iter.Seq2[K, V]

// SingleUseSeqE is a SeqE[T] that can be only iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseSeqE[T any] = SeqE[T]

// ErrFunc is the check function that can tell if currently an iterator that is related to the error function has an issue or not.
type ErrFunc = errorkitlite.ErrFunc
