package controller

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/deadline-todo/pkg/db"
	"github.com/rs/zerolog/log"
)

// filterKeys binds the digit keys to the filters, in the order they are offered.
func filterKeys() map[string]db.Filter {
	keys := map[string]db.Filter{}

	for i, f := range db.Filters() {
		keys[fmt.Sprintf("%d", i+1)] = f
	}

	return keys
}

// filterLabels are the button captions of the filters.
func filterLabels() map[db.Filter]string {
	return map[db.Filter]string{
		db.FilterAll:       "All",
		db.FilterActive:    "Active",
		db.FilterCompleted: "Completed",
		db.FilterRed:       "Overdue",
		db.FilterYellow:    "Due soon",
		db.FilterGreen:     "Time to spare",
	}
}

// AsKey names a key event: the character for printable keys, "Space" for the space bar, and the
// tcell key name for everything else.
func AsKey(evt *tcell.EventKey) string {
	if evt.Key() == tcell.KeyRune {
		if evt.Rune() == ' ' {
			return "Space"
		}

		return string(evt.Rune())
	}

	return tcell.KeyNames[evt.Key()]
}

func (c *Controller) initEvents() {
	c.events = map[string]KeyEvent{}
	c.formEvents = map[string]KeyEvent{}

	c.initFilterEvents(c.events)
	c.initTodoEvents(c.events)
	c.initExitEvent(c.events)

	c.formEvents["Esc"] = KeyEvent{
		Description: "Back to list",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showList()

			return nil
		},
	}
}

func (c *Controller) initExitEvent(events map[string]KeyEvent) {
	events["q"] = KeyEvent{
		Description: "Exit",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			log.Info().Msg("terminating application")

			c.app.Stop()

			return nil
		},
	}
}

func (c *Controller) getFilterAction(f db.Filter) func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		c.applyFilter(f)

		return nil
	}
}

func (c *Controller) initFilterEvents(events map[string]KeyEvent) {
	labels := filterLabels()

	for key, f := range filterKeys() {
		events[key] = KeyEvent{
			Description: "Show " + labels[f],
			Action:      c.getFilterAction(f),
		}
	}
}

func (c *Controller) initTodoEvents(events map[string]KeyEvent) {
	events["n"] = KeyEvent{
		Description: "New todo",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.switchToForm()

			return nil
		},
	}

	events["Space"] = KeyEvent{
		Description: "Toggle done",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.toggleSelected()

			return nil
		},
	}

	deleteEvent := KeyEvent{
		Description: "Delete",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.deleteSelected()

			return nil
		},
	}
	events["d"] = deleteEvent
	events["Delete"] = deleteEvent
}

func (c *Controller) applyFilter(f db.Filter) {
	if err := c.db.SetFilter(f); err != nil {
		log.Warn().Err(err).Msgf("error while trying to apply filter %s", f)
		c.setMessage(err.Error())

		return
	}

	log.Debug().Str("filter", string(f)).Msg("filter changed")

	c.message = ""
	c.refreshList()
}

func (c *Controller) toggleSelected() {
	if c.selectedTodo == nil {
		return
	}

	todo, err := c.db.ToggleComplete(c.ctx, c.selectedTodo.ID)
	if err != nil {
		log.Warn().Err(err).Msgf("error while trying to toggle todo %s", c.selectedTodo.Text)
		c.setMessage(err.Error())

		return
	}

	c.message = ""
	c.refreshList()
	c.selectTodo(todo)
}

func (c *Controller) deleteSelected() {
	if c.selectedTodo == nil {
		return
	}

	row, _ := c.table.GetSelection()

	err := c.db.DeleteTodo(c.ctx, c.selectedTodo.ID)
	if err != nil && !errors.Is(err, db.ErrTodoNotFound) {
		log.Warn().Err(err).Msgf("error while trying to delete todo %s", c.selectedTodo.Text)
		c.setMessage(err.Error())

		return
	}

	c.message = ""
	c.refreshList()
	// keep the cursor where it was, or on the last todo if the list got shorter
	c.selectNearest(row)
}
