package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"job-portal/internal/database"
)

// DB adapts a database/sql handle, such as a sqlmock connection, to
// database.DB.
type DB struct {
	db *sql.DB
}

func Wrap(db *sql.DB) *DB {
	return &DB{db: db}
}

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.db == nil {
		return fmt.Errorf("nil db")
	}
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if d == nil || d.db == nil {
		return 0, fmt.Errorf("nil db")
	}
	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if d == nil || d.db == nil {
		return nil, fmt.Errorf("nil db")
	}
	r, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) Begin(ctx context.Context) (database.Tx, error) {
	if d == nil || d.db == nil {
		return nil, fmt.Errorf("nil db")
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	r, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t sqlTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t sqlTx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close() {
	_ = r.rows.Close()
}

func (r sqlRows) Next() bool {
	return r.rows.Next()
}

func (r sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r sqlRows) Err() error {
	return r.rows.Err()
}
