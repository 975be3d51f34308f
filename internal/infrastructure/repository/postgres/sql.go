package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const pqUndefinedTable = "42P01"

// ErrSchemaNotMigrated is returned when the bracket tables are missing.
var ErrSchemaNotMigrated = errors.New("database schema is not migrated")

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pqUndefinedTable
}

func wrapQueryError(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrSchemaNotMigrated, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}
