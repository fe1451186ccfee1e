package entry

import (
	"context"
	"strings"
	"time"

	"github.com/matt-steen/deadline-todo/pkg/db"
	"github.com/rs/zerolog/log"
)

// Inline messages shown under the offending field.
const (
	TextErrorMessage = "oops, you didn't enter a task!"
	TimeErrorMessage = "invalid time, it should look like this: 1530 -> 15:30"
)

// DefaultTime is the time field's value when the form is opened or reset.
const DefaultTime = "12:00"

// Adder stores a new todo.
type Adder interface {
	AddTodo(ctx context.Context, text string, deadline time.Time) (*db.Todo, error)
}

// Form holds the values typed into the new-todo form along with their validation messages.
type Form struct {
	Text      string
	TextError string

	Day   int
	Month time.Month
	Year  int

	TimeInput string
	TimeError string

	Location *time.Location
}

// NewForm returns a form preset to today's date at DefaultTime in loc.
func NewForm(now time.Time, loc *time.Location) *Form {
	today := now.In(loc)

	return &Form{
		Day:       today.Day(),
		Month:     today.Month(),
		Year:      today.Year(),
		TimeInput: DefaultTime,
		Location:  loc,
	}
}

// SetText updates the task text; a pending text error clears as soon as there is some text.
func (f *Form) SetText(text string) {
	f.Text = text

	if strings.TrimSpace(text) != "" {
		f.TextError = ""
	}
}

// SetTimeInput normalizes raw, validates it and returns the normalized value to display.
func (f *Form) SetTimeInput(raw string) string {
	f.TimeInput = NormalizeTime(raw)

	if _, _, err := ParseTime(f.TimeInput); err != nil {
		f.TimeError = TimeErrorMessage
	} else {
		f.TimeError = ""
	}

	return f.TimeInput
}

// Deadline returns the deadline currently described by the date selectors and time field.
func (f *Form) Deadline() (time.Time, error) {
	hour, minute, err := ParseTime(f.TimeInput)
	if err != nil {
		return time.Time{}, err
	}

	return Deadline(f.Day, f.Month, f.Year, hour, minute, f.Location), nil
}

// Submit adds the todo described by the form. Blank text or a bad time leaves the store untouched
// and sets the matching message; success clears the text and resets the time field.
func (f *Form) Submit(ctx context.Context, adder Adder) (*db.Todo, error) {
	if strings.TrimSpace(f.Text) == "" {
		f.TextError = TextErrorMessage

		return nil, db.ErrEmptyText
	}

	if f.TimeError != "" {
		return nil, ErrBadTime
	}

	deadline, err := f.Deadline()
	if err != nil {
		f.TimeError = TimeErrorMessage

		return nil, err
	}

	todo, err := adder.AddTodo(ctx, f.Text, deadline)
	if err != nil {
		log.Warn().Err(err).Msgf("error adding todo '%s'", f.Text)

		return nil, err
	}

	f.Text = ""
	f.TextError = ""
	f.TimeInput = DefaultTime

	return todo, nil
}
