package zipkit

import (
	"database/sql"
	"io"
)

// SQLRows is the iteration surface of sql.Rows.
// Depending on this role interface instead of the concrete type
// keeps the bridging compatible with any database/sql like driver result,
// and makes consumers of FromSQLRows testable.
type SQLRows interface {
	io.Closer
	Next() bool
	Err() error
	RowScanner
}

var _ SQLRows = (*sql.Rows)(nil)

type RowScanner interface{ Scan(dest ...any) error }

type RowMapper[T any] interface {
	Map(s RowScanner) (T, error)
}

type RowMapperFunc[T any] func(RowScanner) (T, error)

func (fn RowMapperFunc[T]) Map(s RowScanner) (T, error) { return fn(s) }

// FromSQLRows allows you to use the same sequence pattern with the sql.Rows structure.
// It allows you to do dynamic filtering, or a pipeline/middleware pattern on your sql query results,
// and to zip row values with any other sequence.
// The rows are closed when the sequence terminates,
// and a failure from either the scanning or the rows is yielded as the sequence's final step.
func FromSQLRows[T any](rows SQLRows, mapper RowMapper[T]) SingleUseSeqE[T] {
	return FromPullIter[T](&sqlRowsIter[T]{rows: rows, mapper: mapper})
}

type sqlRowsIter[T any] struct {
	rows   SQLRows
	mapper RowMapper[T]

	value T
	err   error
}

func (i *sqlRowsIter[T]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.rows.Next() {
		return false
	}
	v, err := i.mapper.Map(i.rows)
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *sqlRowsIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.rows.Err()
}

func (i *sqlRowsIter[T]) Close() error {
	return i.rows.Close()
}

func (i *sqlRowsIter[T]) Value() T {
	return i.value
}
