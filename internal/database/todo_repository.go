package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todos/internal/models"
)

// SQLiteRepo stores the collection in a private in-memory SQLite database.
// Insertion order is id order because ids only ever grow.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo wraps an initialized database handle (see InitDB)
func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

// ListTodos retrieves the collection ordered by id, optionally filtered by completion
func (r *SQLiteRepo) ListTodos(ctx context.Context, completed *bool) ([]*models.Todo, error) {
	query := `SELECT id, task, completed, priority FROM todos`
	var args []any
	if completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, *completed)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.Task, &todo.Completed, &todo.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// GetTodo retrieves a single todo by id
func (r *SQLiteRepo) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	return getTodo(ctx, r.db, id)
}

// CountTodos returns the number of rows in the collection
func (r *SQLiteRepo) CountTodos(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}

// CreateTodo inserts a new incomplete todo and returns it
func (r *SQLiteRepo) CreateTodo(ctx context.Context, task, priority string) (*models.Todo, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (task, completed, priority) VALUES (?, 0, ?)`,
		task, priority,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Todo{
		ID:        int(id),
		Task:      task,
		Completed: false,
		Priority:  priority,
	}, nil
}

// UpdateTodo applies patch to the todo with the given id inside one transaction
func (r *SQLiteRepo) UpdateTodo(ctx context.Context, id int, patch models.TodoPatch) (*models.Todo, error) {
	var updated *models.Todo
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		todo, err := getTodo(ctx, tx, id)
		if err != nil {
			return err
		}

		patch.Apply(todo)

		_, err = tx.ExecContext(ctx,
			`UPDATE todos SET task = ?, completed = ? WHERE id = ?`,
			todo.Task, todo.Completed, todo.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update todo %d: %w", id, err)
		}

		updated = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CompleteAllTodos marks every row completed
func (r *SQLiteRepo) CompleteAllTodos(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE todos SET completed = 1`); err != nil {
		return fmt.Errorf("failed to complete todos: %w", err)
	}
	return nil
}

// DeleteTodo removes the todo with the given id
func (r *SQLiteRepo) DeleteTodo(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrTodoNotFound
	}
	return nil
}

// Close closes the database, discarding the collection
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getTodo(ctx context.Context, q querier, id int) (*models.Todo, error) {
	todo := &models.Todo{}
	err := q.QueryRowContext(ctx,
		`SELECT id, task, completed, priority FROM todos WHERE id = ?`,
		id,
	).Scan(&todo.ID, &todo.Task, &todo.Completed, &todo.Priority)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return todo, nil
}
