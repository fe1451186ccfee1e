package controller

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/deadline-todo/pkg/db"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// headerHeight fits the title, the message line and the longest shortcut column.
const headerHeight = 8

func (c *Controller) getListGrid() *tview.Grid {
	c.header = tview.NewTable().SetBorders(false).SetSelectable(false, false)
	c.table = c.getTable()

	c.updateListHeader()
	c.refreshList()

	grid := tview.NewGrid().SetBorders(true).SetRows(headerHeight, 0)

	grid.AddItem(c.header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.table, 1, 0, 1, 1, 0, 0, true)

	return grid
}

// updateListHeader shows the title and active filter on the first row, the last error (if any)
// on the second, followed by two columns of keyboard shortcuts: filters on the left and
// everything else on the right, each sorted by key.
func (c *Controller) updateListHeader() {
	c.header.Clear()

	labels := filterLabels()
	title := fmt.Sprintf("[hotpink]%s [yellow]showing: %s", appTitle, labels[c.db.Filter])
	c.header.SetCell(0, 0, tview.NewTableCell(title))

	if c.message != "" {
		c.header.SetCell(1, 0, tview.NewTableCell(tview.Escape(c.message)).SetTextColor(tcell.ColorHotPink))
	}

	keys := make([]string, 0, len(c.events))
	for key := range c.events {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	shortcuts := map[int][]string{0: {}, 1: {}}
	filters := filterKeys()

	for _, key := range keys {
		text := fmt.Sprintf("[orange]<%s>[white] %s", key, c.events[key].Description)

		if _, ok := filters[key]; ok {
			shortcuts[0] = append(shortcuts[0], text)
		} else {
			shortcuts[1] = append(shortcuts[1], text)
		}
	}

	row := 2
	for i := 0; i < len(shortcuts[0]) || i < len(shortcuts[1]); i++ {
		for col := 0; col < 2; col++ {
			if i < len(shortcuts[col]) {
				c.header.SetCell(row, col, tview.NewTableCell(shortcuts[col][i]).SetExpansion(1))
			}
		}

		row++
	}
}

func (c *Controller) getTable() *tview.Table {
	table := tview.NewTable().SetBorders(false)

	c.content = &TodoContent{layouts: c.layouts}

	table.SetContent(c.content)
	table.SetSelectable(true, false)
	table.SetSelectionChangedFunc(c.setCurrentRow)

	return table
}

// when the row selection changes, update the selected Todo.
func (c *Controller) setCurrentRow(row, col int) {
	c.setSelectedTodo(row, c.content.TodoAt(row))
}

func (c *Controller) setSelectedTodo(row int, todo *db.Todo) {
	c.selectedTodo = todo

	text := "nil"
	if todo != nil {
		text = todo.Text
	}

	log.Debug().
		Str("filter", string(c.db.Filter)).
		Int("row", row).
		Msgf("setting selectedTodo to '%s'", text)
}

// refreshList regroups the visible todos and keeps the selection on the same todo when it is
// still shown.
func (c *Controller) refreshList() {
	previous := c.selectedTodo

	groups := db.GroupByDate(c.db.VisibleTodos(), c.layouts.Date, c.layouts.Location)
	c.content.Update(groups, c.db.Now())

	c.updateListHeader()

	if row := c.content.RowOf(previous); row >= 0 {
		c.table.Select(row, 0)

		return
	}

	c.selectNearest(0)
}

// selectTodo moves the selection onto the given todo if it is visible.
func (c *Controller) selectTodo(todo *db.Todo) {
	if row := c.content.RowOf(todo); row >= 0 {
		c.table.Select(row, 0)
	}
}

// selectNearest selects the first todo at or after row, falling back to the last todo before it.
func (c *Controller) selectNearest(row int) {
	count := c.content.GetRowCount()

	for r := row; r < count; r++ {
		if c.content.TodoAt(r) != nil {
			c.table.Select(r, 0)

			return
		}
	}

	for r := row - 1; r >= 0; r-- {
		if c.content.TodoAt(r) != nil {
			c.table.Select(r, 0)

			return
		}
	}

	c.setSelectedTodo(-1, nil)
}

func (c *Controller) showList() {
	c.app.SetInputCapture(c.handleKeys)

	c.refreshList()

	c.pages.SwitchToPage(listPage)
	c.app.SetFocus(c.table)
}
