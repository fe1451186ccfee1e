package db

import "time"

// Filter selects which todos are shown. It is view state only and is never stored with a todo.
type Filter string

// These constants refer to the filters supported by the app.
const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterRed       Filter = "red"
	FilterYellow    Filter = "yellow"
	FilterGreen     Filter = "green"
)

// Filters lists every filter in the order they are offered to the user.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted, FilterRed, FilterYellow, FilterGreen}
}

// Urgency classifies how close an incomplete todo is to its deadline.
type Urgency string

const (
	UrgencyRed    Urgency = "red"
	UrgencyYellow Urgency = "yellow"
	UrgencyGreen  Urgency = "green"
)

// Todo is a single task with a deadline.
type Todo struct {
	ID       string
	Text     string
	Deadline time.Time
	// Completed and CompletedDatetime move together: CompletedDatetime is nil unless Completed
	// is set, in which case it holds the time of the toggle.
	Completed         bool
	CompletedDatetime *time.Time
}

// DateGroup holds the todos that share a deadline date.
type DateGroup struct {
	Date  string
	Todos []*Todo
}
