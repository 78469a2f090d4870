package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"petpromise/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so every query can run
// against the pool or inside a unit-of-work transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func wrapQueryErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, msg, err)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, msg, err)
		}
	}

	return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, msg, err)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}

// applyPatch issues a partial UPDATE for the listed public fields, translated
// through the store's field→column map. Field order is made deterministic so
// generated SQL is stable for identical patches.
func applyPatch(ctx context.Context, db DBTX, table string, columns map[string]string, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := columns[name]; !ok {
			return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure,
				fmt.Sprintf("no column mapping for field %q on %s", name, table), nil)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(names))
	args := []any{id}
	for i, name := range names {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", columns[name], i+2))
		args = append(args, fields[name])
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(assignments, ", "))
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return wrapQueryErr("failed to patch "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(table + " row not found")
	}
	return nil
}
