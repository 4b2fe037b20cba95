// Package boltdb exposes the content of Bolt buckets as zipkit sequences.
package boltdb

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/zipkit"
	"go.llib.dev/zipkit/internal/errorkitlite"
)

// errBreak signals that the consumer stopped the iteration, not that the view failed.
const errBreak errorkitlite.Error = "iteration break"

// Entries yields the key-value pairs of the named bucket in key order.
// A missing bucket yields an empty sequence.
// The yielded byte slices are copies, they stay valid after the read transaction ends.
func Entries(db *bolt.DB, bucket []byte) zipkit.SingleUseSeqE[zipkit.Pair[[]byte, []byte]] {
	return zipkit.Once2(func(yield func(zipkit.Pair[[]byte, []byte], error) bool) {
		err := db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			if b == nil {
				return nil
			}
			c := b.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				p := zipkit.Pair[[]byte, []byte]{A: bytes.Clone(k), B: bytes.Clone(v)}
				if !yield(p, nil) {
					return errBreak
				}
			}
			return nil
		})
		if err != nil && err != errBreak {
			var zero zipkit.Pair[[]byte, []byte]
			yield(zero, err)
		}
	})
}

// Keys yields the keys of the named bucket in key order.
// A missing bucket yields an empty sequence.
func Keys(db *bolt.DB, bucket []byte) zipkit.SingleUseSeqE[[]byte] {
	return zipkit.Once2(func(yield func([]byte, error) bool) {
		err := db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			if b == nil {
				return nil
			}
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if !yield(bytes.Clone(k), nil) {
					return errBreak
				}
			}
			return nil
		})
		if err != nil && err != errBreak {
			yield(nil, err)
		}
	})
}

// Values yields the values of the named bucket in key order.
// A missing bucket yields an empty sequence.
func Values(db *bolt.DB, bucket []byte) zipkit.SingleUseSeqE[[]byte] {
	return zipkit.Once2(func(yield func([]byte, error) bool) {
		err := db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			if b == nil {
				return nil
			}
			c := b.Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				if !yield(bytes.Clone(v), nil) {
					return errBreak
				}
			}
			return nil
		})
		if err != nil && err != errBreak {
			yield(nil, err)
		}
	})
}
