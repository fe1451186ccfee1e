package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	// use the sqlite db driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed base.sql
var baseSQL string

// memoryDSN keeps all state in process memory; nothing is written to disk.
const memoryDSN = ":memory:"

var (
	// ErrEmptyText is returned when a todo is added without any text.
	ErrEmptyText = errors.New("todo text is empty")
	// ErrTodoNotFound is returned when an id does not match any todo.
	ErrTodoNotFound = errors.New("todo not found")
)

// Database manages the in-memory sqlite connection and the state of the system.
type Database struct {
	conn   *sql.DB
	Todos  []*Todo
	Filter Filter
	// Now is the clock used for completion times and deadline filters.
	Now func() time.Time
}

// NewDatabase opens an in-memory sqlite database, initializes the structure and loads the
// (initially empty) list of todos.
func NewDatabase(ctx context.Context) (*Database, error) {
	conn, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("error opening in-memory sqlite db: %w", err)
	}

	// every connection to :memory: is a separate database, so only ever use one.
	conn.SetMaxOpenConns(1)

	database := Database{
		conn:   conn,
		Todos:  []*Todo{},
		Filter: FilterAll,
		Now:    time.Now,
	}

	err = database.initialize(ctx)
	if err != nil {
		conn.Close()

		return nil, err
	}

	err = database.Reload(ctx)
	if err != nil {
		conn.Close()

		return nil, err
	}

	return &database, nil
}

func (d *Database) initialize(ctx context.Context) error {
	// run idempotent setup sql to create empty tables if they don't exist
	if _, err := d.conn.ExecContext(ctx, baseSQL); err != nil {
		return fmt.Errorf("error running base sql: %w", err)
	}

	return nil
}

// Close closes the database connection, discarding all todos.
func (d *Database) Close() error {
	if err := d.conn.Close(); err != nil {
		return fmt.Errorf("error closing db: %w", err)
	}

	return nil
}

// Reload replaces the in-memory list with the rows stored in sqlite, in insertion order.
func (d *Database) Reload(ctx context.Context) error {
	todoSQL := `SELECT id, text, deadline, completed, completed_datetime
				FROM todo
				ORDER BY seq`

	rows, err := d.conn.QueryContext(ctx, todoSQL)
	if err != nil {
		return fmt.Errorf("error loading todos: %w", err)
	}
	defer rows.Close()

	todos := []*Todo{}

	for rows.Next() {
		var todo Todo

		if err := rows.Scan(
			&todo.ID, &todo.Text, &todo.Deadline, &todo.Completed, &todo.CompletedDatetime,
		); err != nil {
			return fmt.Errorf("error scanning todo: %w", err)
		}

		todos = append(todos, &todo)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error scanning todos: %w", err)
	}

	d.Todos = todos

	return nil
}

// AddTodo creates a new, incomplete todo with the given text and deadline; the todo is
// appended to the end of the list.
func (d *Database) AddTodo(ctx context.Context, text string, deadline time.Time) (*Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	todo := &Todo{
		ID:       uuid.NewString(),
		Text:     text,
		Deadline: deadline,
	}

	_, err := d.conn.ExecContext(
		ctx,
		`INSERT INTO todo (id, text, deadline, completed, completed_datetime)
		     VALUES ($1, $2, $3, $4, $5)`,
		todo.ID, todo.Text, todo.Deadline, todo.Completed, todo.CompletedDatetime,
	)
	if err != nil {
		return nil, fmt.Errorf("error adding todo '%s': %w", text, err)
	}

	d.Todos = append(d.Todos, todo)

	log.Debug().Str("id", todo.ID).Time("deadline", deadline).Msgf("added todo '%s'", text)

	return todo, nil
}

func (d *Database) findTodo(id string) (int, *Todo, error) {
	for i, todo := range d.Todos {
		if todo.ID == id {
			return i, todo, nil
		}
	}

	return -1, nil, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
}

// ToggleComplete flips the completion state of the todo with the given id. Completing a todo
// records the current time; reopening it clears that time.
func (d *Database) ToggleComplete(ctx context.Context, id string) (*Todo, error) {
	_, todo, err := d.findTodo(id)
	if err != nil {
		return nil, err
	}

	completed := !todo.Completed

	var completedDatetime *time.Time

	if completed {
		now := d.Now()
		completedDatetime = &now
	}

	_, err = d.conn.ExecContext(
		ctx,
		`UPDATE todo SET completed = $1, completed_datetime = $2 WHERE id = $3`,
		completed, completedDatetime, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error toggling todo '%s': %w", todo.Text, err)
	}

	todo.Completed = completed
	todo.CompletedDatetime = completedDatetime

	log.Debug().Str("id", id).Bool("completed", completed).Msgf("toggled todo '%s'", todo.Text)

	return todo, nil
}

// DeleteTodo removes the todo with the given id; the remaining todos keep their order.
func (d *Database) DeleteTodo(ctx context.Context, id string) error {
	idx, todo, err := d.findTodo(id)
	if err != nil {
		return err
	}

	if _, err := d.conn.ExecContext(ctx, `DELETE FROM todo WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting todo '%s': %w", todo.Text, err)
	}

	d.Todos = append(d.Todos[:idx], d.Todos[idx+1:]...)

	log.Debug().Str("id", id).Msgf("deleted todo '%s'", todo.Text)

	return nil
}

// SetFilter changes the active filter.
func (d *Database) SetFilter(f Filter) error {
	if _, err := ParseFilter(string(f)); err != nil {
		return err
	}

	d.Filter = f

	return nil
}

// VisibleTodos returns the todos that match the active filter right now.
func (d *Database) VisibleTodos() []*Todo {
	return FilterTodos(d.Todos, d.Filter, d.Now())
}
