package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/config"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// psql is the statement builder shared by every repository: PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DB wraps the pooled connection together with the error classifier used to
// annotate failed queries in the logs.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed connection pool described by cfg and
// verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return NewDB(conn, log), nil
}

// NewDB wraps an already opened *sql.DB.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// querier is the subset of *sql.DB and *sql.Tx used by repositories.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type txCtxKey struct{}

// conn returns the transaction bound to ctx by [DB.WithinReadTx] or
// [DB.WithinTx], falling back to the pool.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// WithinReadTx implements [Transactor]. fn runs inside a read-only,
// repeatable-read transaction so that every query it issues sees one
// consistent snapshot. The transaction is always rolled back.
func (db *DB) WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinReadTx").Msg("error during opening read transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	return fn(context.WithValue(ctx, txCtxKey{}, tx))
}

// WithinTx implements [Transactor]. fn runs inside a read-write transaction
// that is committed when fn returns nil and rolled back otherwise.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTx").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithinTx").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// queryIDs runs a single-column id projection and collects the result.
// It never returns a nil slice on success.
func (db *DB) queryIDs(ctx context.Context, funcName string, query sq.Sqlizer) ([]int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.conn(ctx).QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", db.retryable(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// queryExists runs "SELECT EXISTS (query)".
func (db *DB) queryExists(ctx context.Context, funcName string, query sq.SelectBuilder) (bool, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := query.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = db.conn(ctx).QueryRowContext(ctx, sqlQuery, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", db.retryable(err)).Msg("error executing exists query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
