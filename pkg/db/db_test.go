package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/matt-steen/deadline-todo/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func getDB(t *testing.T) *db.Database {
	t.Helper()

	database, err := db.NewDatabase(context.Background())
	require.NoError(t, err)
	require.NotNil(t, database)

	database.Now = func() time.Time { return testNow }

	t.Cleanup(func() { database.Close() })

	return database
}

func addTodo(t *testing.T, database *db.Database, text string, deadline time.Time) *db.Todo {
	t.Helper()

	todo, err := database.AddTodo(context.Background(), text, deadline)
	require.NoError(t, err)

	return todo
}

func TestNewDatabase(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)
	assert.Equal(0, len(database.Todos))
	assert.Equal(db.FilterAll, database.Filter)
}

func TestNewDatabasesAreIsolated(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	first := getDB(t)
	second := getDB(t)

	addTodo(t, first, "only in the first", testNow)

	assert.Nil(second.Reload(context.Background()))
	assert.Equal(0, len(second.Todos))
}

func TestAddTodo(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)

	deadline := testNow.Add(3 * time.Hour)
	todo := addTodo(t, database, "do some work", deadline)

	assert.NotEmpty(todo.ID)
	assert.Equal("do some work", todo.Text)
	assert.True(deadline.Equal(todo.Deadline))
	assert.False(todo.Completed)
	assert.Nil(todo.CompletedDatetime)

	second := addTodo(t, database, "do more work", deadline)
	assert.NotEqual(todo.ID, second.ID)

	// new todos go to the end of the list
	assert.Equal([]*db.Todo{todo, second}, database.Todos)
}

func TestAddTodoEmptyText(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)
	addTodo(t, database, "existing", testNow)

	for _, text := range []string{"", "   ", "\t\n"} {
		todo, err := database.AddTodo(context.Background(), text, testNow)
		assert.Nil(todo)
		assert.ErrorIs(err, db.ErrEmptyText)
	}

	assert.Equal(1, len(database.Todos))
	assert.Nil(database.Reload(context.Background()))
	assert.Equal(1, len(database.Todos))
}

func TestToggleComplete(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)
	todo := addTodo(t, database, "do some work", testNow.Add(time.Hour))

	toggled, err := database.ToggleComplete(context.Background(), todo.ID)
	assert.Nil(err)
	assert.Same(todo, toggled)
	assert.True(todo.Completed)
	assert.NotNil(todo.CompletedDatetime)
	assert.True(testNow.Equal(*todo.CompletedDatetime))

	_, err = database.ToggleComplete(context.Background(), todo.ID)
	assert.Nil(err)
	assert.False(todo.Completed)
	assert.Nil(todo.CompletedDatetime)
}

func TestToggleCompleteUnknown(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)

	todo, err := database.ToggleComplete(context.Background(), "missing")
	assert.Nil(todo)
	assert.ErrorIs(err, db.ErrTodoNotFound)
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)
	first := addTodo(t, database, "first", testNow)
	second := addTodo(t, database, "second", testNow)
	third := addTodo(t, database, "third", testNow)

	assert.Nil(database.DeleteTodo(context.Background(), second.ID))

	// confirm preservation of the order of the remaining todos
	assert.Equal([]*db.Todo{first, third}, database.Todos)

	assert.ErrorIs(database.DeleteTodo(context.Background(), second.ID), db.ErrTodoNotFound)
}

func TestReloadMatchesMemory(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)
	first := addTodo(t, database, "first", testNow.Add(-time.Hour))
	second := addTodo(t, database, "second", testNow.Add(time.Hour))
	third := addTodo(t, database, "third", testNow.Add(48*time.Hour))

	_, err := database.ToggleComplete(context.Background(), second.ID)
	assert.Nil(err)
	assert.Nil(database.DeleteTodo(context.Background(), first.ID))

	assert.Nil(database.Reload(context.Background()))
	assert.Equal(2, len(database.Todos))

	reloaded := database.Todos[0]
	assert.Equal(second.ID, reloaded.ID)
	assert.Equal(second.Text, reloaded.Text)
	assert.True(second.Deadline.Equal(reloaded.Deadline))
	assert.True(reloaded.Completed)
	assert.NotNil(reloaded.CompletedDatetime)
	assert.True(testNow.Equal(*reloaded.CompletedDatetime))

	reloaded = database.Todos[1]
	assert.Equal(third.ID, reloaded.ID)
	assert.False(reloaded.Completed)
	assert.Nil(reloaded.CompletedDatetime)
}

func TestSetFilter(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)

	assert.Nil(database.SetFilter(db.FilterYellow))
	assert.Equal(db.FilterYellow, database.Filter)

	assert.ErrorIs(database.SetFilter(db.Filter("purple")), db.ErrUnknownFilter)
	assert.Equal(db.FilterYellow, database.Filter)
}

func TestVisibleTodos(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	database := getDB(t)
	overdue := addTodo(t, database, "overdue", testNow.Add(-time.Minute))
	soon := addTodo(t, database, "soon", testNow.Add(2*time.Hour))
	later := addTodo(t, database, "later", testNow.Add(72*time.Hour))
	done := addTodo(t, database, "done", testNow.Add(-time.Hour))

	_, err := database.ToggleComplete(context.Background(), done.ID)
	assert.Nil(err)

	tests := []struct {
		filter db.Filter
		want   []*db.Todo
	}{
		{db.FilterAll, []*db.Todo{overdue, soon, later, done}},
		{db.FilterActive, []*db.Todo{overdue, soon, later}},
		{db.FilterCompleted, []*db.Todo{done}},
		{db.FilterRed, []*db.Todo{overdue}},
		{db.FilterYellow, []*db.Todo{soon}},
		{db.FilterGreen, []*db.Todo{later}},
	}

	for _, tt := range tests {
		assert.Nil(database.SetFilter(tt.filter))
		assert.Equal(tt.want, database.VisibleTodos(), "filter %s", tt.filter)
	}
}
