package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB records every statement issued through the store and hands out a
// single fakeTx per Begin.
type fakeDB struct {
	tx *fakeTx

	queries []recordedQuery
	// rowErr is returned by every QueryRow scan; pgx.ErrNoRows simulates
	// missing records.
	rowErr error
	// scan populates destinations for successful QueryRow calls.
	scan func(dest ...any) error
}

type recordedQuery struct {
	sql  string
	args []any
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, recordedQuery{sql: sql, args: args})
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("fakeDB: Query not implemented")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, recordedQuery{sql: sql, args: args})
	return fakeRow{err: f.rowErr, scan: f.scan}
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.tx == nil {
		return nil, errors.New("begin refused")
	}
	return f.tx, nil
}

type fakeRow struct {
	err  error
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.scan != nil {
		return r.scan(dest...)
	}
	return nil
}

// fakeTx implements pgx.Tx over recorded statements. failOnTable forces
// the first Exec touching that table to fail, simulating a constraint
// violation mid-transaction.
type fakeTx struct {
	userExists  bool
	userID      uuid.UUID
	failOnTable string

	statements []recordedQuery
	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	t.statements = append(t.statements, recordedQuery{sql: sql, args: args})
	if !t.userExists {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{scan: func(dest ...any) error {
		if id, ok := dest[0].(*uuid.UUID); ok {
			*id = t.userID
		}
		return nil
	}}
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.statements = append(t.statements, recordedQuery{sql: sql, args: args})
	if t.failOnTable != "" && strings.Contains(sql, t.failOnTable) {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	}
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("fakeTx: Begin") }
func (t *fakeTx) Conn() *pgx.Conn                           { panic("fakeTx: Conn") }
func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("fakeTx: CopyFrom")
}
func (t *fakeTx) LargeObjects() pgx.LargeObjects { panic("fakeTx: LargeObjects") }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("fakeTx: Prepare")
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("fakeTx: Query")
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("fakeTx: SendBatch")
}
