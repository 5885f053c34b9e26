package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/todos/internal/models"
)

// runMigrations creates the todos table and seeds the default records if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// AUTOINCREMENT keeps ids monotonic: a deleted id is never handed out again
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'medium'
		)
	`)
	if err != nil {
		return err
	}

	return seedTodos(ctx, db)
}

// seedTodos inserts the seed records if the todos table is empty
func seedTodos(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos").Scan(&count)
	if err != nil {
		return err
	}

	// If todos exist, don't seed
	if count > 0 {
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, todo := range models.SeedTodos() {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO todos (id, task, completed, priority) VALUES (?, ?, ?, ?)",
				todo.ID, todo.Task, todo.Completed, todo.Priority,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
