package kuadro

import (
	"context"
	"database/sql"
)

func MigrateSQL(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}
