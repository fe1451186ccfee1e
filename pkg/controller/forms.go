package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/deadline-todo/pkg/entry"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	textMax  = 200
	timeMax  = 5
	daysMax  = 31
	formRows = 14
)

func (c *Controller) switchToForm() {
	c.resetFormFields()

	c.todoForm.SetFocus(0)

	c.pages.SwitchToPage(formPage)
	c.app.SetFocus(c.todoForm)

	c.app.SetInputCapture(c.handleFormKeys)
}

func (c *Controller) getFormGrid() *tview.Grid {
	grid := tview.NewGrid().SetBorders(true).SetRows(2, formRows, 0)

	header := tview.NewTable().SetBorders(false).SetSelectable(false, false)
	header.SetCell(0, 0, tview.NewTableCell("[yellow]New Todo"))

	row := 1
	for key, event := range c.formEvents {
		text := fmt.Sprintf("[orange]<%s>[white] %s", key, event.Description)
		header.SetCell(row, 0, tview.NewTableCell(text))
		row++
	}

	c.initForm()

	c.textErrorView = tview.NewTextView().SetTextColor(tcell.ColorHotPink)
	c.timeErrorView = tview.NewTextView().SetTextColor(tcell.ColorHotPink)

	errorLines := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(c.textErrorView, 1, 0, false).
		AddItem(c.timeErrorView, 1, 0, false)

	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.todoForm, 1, 0, 1, 1, 0, 0, true)
	grid.AddItem(errorLines, 2, 0, 1, 1, 0, 0, false)

	return grid
}

func dayOptions() []string {
	options := make([]string, 0, daysMax)
	for day := 1; day <= daysMax; day++ {
		options = append(options, strconv.Itoa(day))
	}

	return options
}

func monthOptions() []string {
	options := make([]string, 0, 12)
	for month := time.January; month <= time.December; month++ {
		options = append(options, month.String())
	}

	return options
}

func yearOptions(years []int) []string {
	options := make([]string, 0, len(years))
	for _, year := range years {
		options = append(options, strconv.Itoa(year))
	}

	return options
}

func (c *Controller) initForm() {
	years := entry.Years(c.db.Now())

	c.todoForm = tview.NewForm().
		AddInputField("Task", "", textMax, nil, c.onTextChanged).
		AddDropDown("Day", dayOptions(), c.form.Day-1, func(option string, index int) {
			c.form.Day = index + 1
		}).
		AddDropDown("Month", monthOptions(), int(c.form.Month)-1, func(option string, index int) {
			c.form.Month = time.Month(index + 1)
		}).
		AddDropDown("Year", yearOptions(years), 0, func(option string, index int) {
			if index >= 0 && index < len(years) {
				c.form.Year = years[index]
			}
		}).
		AddInputField("Time", c.form.TimeInput, timeMax, nil, c.onTimeChanged)

	c.todoForm.SetBorder(false)

	c.textField, _ = c.todoForm.GetFormItemByLabel("Task").(*tview.InputField)
	c.timeField, _ = c.todoForm.GetFormItemByLabel("Time").(*tview.InputField)
	c.textField.SetPlaceholder("Add a task")
	c.timeField.SetPlaceholder("hhmm -> 1530")

	c.todoForm.AddButton("Add", c.submitForm)
	c.todoForm.AddButton("Cancel", c.showList)
}

func (c *Controller) onTextChanged(text string) {
	c.form.SetText(text)
	c.updateFormErrors()
}

func (c *Controller) onTimeChanged(text string) {
	normalized := c.form.SetTimeInput(text)

	// SetText calls back into here; the normalized value normalizes to itself, so this settles.
	if normalized != text {
		c.timeField.SetText(normalized)
	}

	c.updateFormErrors()
}

func (c *Controller) updateFormErrors() {
	if c.textErrorView == nil || c.timeErrorView == nil {
		return
	}

	c.textErrorView.SetText(c.form.TextError)
	c.timeErrorView.SetText(c.form.TimeError)
}

// resetFormFields copies the form state back into the widgets.
func (c *Controller) resetFormFields() {
	c.textField.SetText(c.form.Text)
	c.timeField.SetText(c.form.TimeInput)
	c.updateFormErrors()
}

func (c *Controller) submitForm() {
	log.Debug().Msgf("saving todo with text '%s'", c.form.Text)

	todo, err := c.form.Submit(c.ctx, c.db)
	if err != nil {
		c.updateFormErrors()

		// validation problems are shown inline; anything else goes to the list header too
		if c.form.TextError == "" && c.form.TimeError == "" {
			log.Err(err).Msg("error saving the new todo")
			c.setMessage(err.Error())
		}

		return
	}

	c.resetFormFields()

	// select the new todo and return to the list
	c.selectedTodo = todo
	c.message = ""
	c.showList()
}
