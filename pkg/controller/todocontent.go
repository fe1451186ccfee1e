package controller

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/deadline-todo/pkg/db"
	"github.com/rivo/tview"
)

const (
	textDeadlineRatio = 3

	boxOpen = "☐"
	boxDone = "☑"
)

// urgencyColors maps each urgency to the colour of its deadline.
func urgencyColors() map[db.Urgency]tcell.Color {
	return map[db.Urgency]tcell.Color{
		db.UrgencyRed:    tcell.ColorRed,
		db.UrgencyYellow: tcell.ColorGoldenrod,
		db.UrgencyGreen:  tcell.ColorGreen,
	}
}

// todoRow is one line of the list: either a date heading (todo is nil) or a todo.
type todoRow struct {
	date string
	todo *db.Todo
}

// TodoContent implements tview.TableContent, which tview.Table uses to update data.
// Rows are the visible todos grouped under a heading per deadline date.
type TodoContent struct {
	tview.TableContentReadOnly
	rows    []todoRow
	layouts Layouts
	now     time.Time
}

// Update rebuilds the rows from the grouped todos; now is used to colour the deadlines.
func (t *TodoContent) Update(groups []*db.DateGroup, now time.Time) {
	t.now = now
	t.rows = []todoRow{}

	for _, group := range groups {
		t.rows = append(t.rows, todoRow{date: group.Date})

		for _, todo := range group.Todos {
			t.rows = append(t.rows, todoRow{date: group.Date, todo: todo})
		}
	}
}

// TodoAt returns the todo shown on the given row, or nil for headings and out-of-range rows.
func (t *TodoContent) TodoAt(row int) *db.Todo {
	if row < 0 || row >= len(t.rows) {
		return nil
	}

	return t.rows[row].todo
}

// RowOf returns the row showing the given todo, or -1 if it is not visible.
func (t *TodoContent) RowOf(todo *db.Todo) int {
	for i, r := range t.rows {
		if r.todo != nil && todo != nil && r.todo.ID == todo.ID {
			return i
		}
	}

	return -1
}

// GetCell returns the cell at the given position or nil if no cell.
func (t *TodoContent) GetCell(row, col int) *tview.TableCell {
	if row < 0 || row >= len(t.rows) {
		return nil
	}

	r := t.rows[row]

	if r.todo == nil {
		if col == 0 {
			return tview.NewTableCell(r.date).SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}

		return tview.NewTableCell("").SetSelectable(false)
	}

	todo := r.todo

	switch col {
	case 0:
		box := boxOpen
		if todo.Completed {
			box = boxDone
		}

		return tview.NewTableCell(box).SetReference(todo)
	case 1:
		cell := tview.NewTableCell(tview.Escape(todo.Text)).SetExpansion(textDeadlineRatio)
		if todo.Completed {
			cell.SetAttributes(tcell.AttrStrikeThrough)
		}

		return cell
	case 2:
		if todo.Completed {
			completed := ""
			if todo.CompletedDatetime != nil {
				completed = "completed: " + todo.CompletedDatetime.In(t.layouts.Location).Format(t.layouts.Completed)
			}

			return tview.NewTableCell(completed).SetTextColor(tcell.ColorGray).SetExpansion(1)
		}

		color := urgencyColors()[db.DeadlineUrgency(todo.Deadline, t.now)]

		return tview.NewTableCell(todo.Deadline.In(t.layouts.Location).Format(t.layouts.Time)).
			SetTextColor(color).SetExpansion(1)
	}

	return nil
}

// GetRowCount returns the number of rows in the table.
func (t *TodoContent) GetRowCount() int {
	return len(t.rows)
}

// GetColumnCount returns the number of columns in the table.
func (t *TodoContent) GetColumnCount() int {
	return 3
}
