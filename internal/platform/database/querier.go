package database

import (
	"context"
	"database/sql"
)

// Rows adalah subset *sql.Rows yang dipakai loader, supaya bisa di-mock.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
	Close() error
}

// Querier runs read-only queries. *sql.DB satisfies it through NewQuerier.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (Rows, error)
}

type sqlQuerier struct {
	db *sql.DB
}

func NewQuerier(db *sql.DB) Querier {
	return &sqlQuerier{db: db}
}

func (q *sqlQuerier) QueryContext(ctx context.Context, query string, args ...interface{}) (Rows, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
