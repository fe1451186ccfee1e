package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/deadline-todo/pkg/db"
	"github.com/matt-steen/deadline-todo/pkg/entry"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	listPage = "list"
	formPage = "form"

	appTitle = "pink_todo_list"
)

// Layouts controls how dates and times are rendered in the list.
type Layouts struct {
	Date      string
	Time      string
	Completed string
	Location  *time.Location
}

// Controller mediates between the model and the view.
type Controller struct {
	ctx     context.Context
	db      *db.Database
	layouts Layouts

	app   *tview.Application
	pages *tview.Pages

	header  *tview.Table
	table   *tview.Table
	content *TodoContent

	form          *entry.Form
	todoForm      *tview.Form
	textField     *tview.InputField
	timeField     *tview.InputField
	textErrorView *tview.TextView
	timeErrorView *tview.TextView

	selectedTodo *db.Todo
	// message is the last error shown to the user in the list header.
	message string

	events     map[string]KeyEvent
	formEvents map[string]KeyEvent
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func(*tcell.EventKey) *tcell.EventKey
}

// NewController creates a new Controller to run the app.
func NewController(ctx context.Context, database *db.Database, layouts Layouts) (*Controller, error) {
	if database == nil {
		return nil, fmt.Errorf("controller needs a database")
	}

	if layouts.Location == nil {
		layouts.Location = time.Local
	}

	c := Controller{
		ctx:     ctx,
		db:      database,
		layouts: layouts,
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		form:    entry.NewForm(database.Now(), layouts.Location),
	}

	c.initEvents()

	c.pages.AddPage(listPage, c.getListGrid(), true, true)
	c.pages.AddPage(formPage, c.getFormGrid(), true, false)

	c.showList()

	return &c, nil
}

// Go starts the app and blocks until it exits.
func (c *Controller) Go() error {
	log.Info().Msg("starting ui")

	if err := c.app.SetRoot(c.pages, true).Run(); err != nil {
		return fmt.Errorf("error running ui: %w", err)
	}

	return nil
}

func (c *Controller) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	if k, ok := c.events[AsKey(evt)]; ok {
		return k.Action(evt)
	}

	return evt
}

func (c *Controller) handleFormKeys(evt *tcell.EventKey) *tcell.EventKey {
	if k, ok := c.formEvents[AsKey(evt)]; ok {
		return k.Action(evt)
	}

	return evt
}

// setMessage records an error for display in the list header; an empty string clears it.
func (c *Controller) setMessage(msg string) {
	c.message = msg
	c.updateListHeader()
}
