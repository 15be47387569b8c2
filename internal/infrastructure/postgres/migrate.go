package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/Trazabilidad-api/migrations"
)

// Migrate ejecuta un comando de goose (up, down, status, version, redo, up-to, down-to)
// con los scripts embebidos. Usa database/sql + lib/pq porque goose trabaja sobre *sql.DB.
func Migrate(ctx context.Context, dsn, command string, args ...string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("migration %s: %w", command, err)
	}
	return nil
}
