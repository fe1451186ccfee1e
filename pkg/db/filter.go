package db

import (
	"errors"
	"fmt"
	"time"
)

// dueSoonWindow is how far ahead a deadline counts as yellow rather than green.
const dueSoonWindow = 24 * time.Hour

// ErrUnknownFilter is returned when a filter name is not one of Filters().
var ErrUnknownFilter = errors.New("unknown filter")

// ParseFilter converts a filter name to a Filter.
func ParseFilter(name string) (Filter, error) {
	for _, f := range Filters() {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: '%s'", ErrUnknownFilter, name)
}

// Matches reports whether the todo should be shown under the filter at the given time.
func (f Filter) Matches(todo *Todo, now time.Time) bool {
	diff := todo.Deadline.Sub(now)

	switch f {
	case FilterCompleted:
		return todo.Completed
	case FilterActive:
		return !todo.Completed
	case FilterRed:
		return !todo.Completed && diff < 0
	case FilterYellow:
		return !todo.Completed && diff >= 0 && diff <= dueSoonWindow
	case FilterGreen:
		return !todo.Completed && diff > dueSoonWindow
	case FilterAll:
		return true
	}

	return true
}

// DeadlineUrgency returns the colour class of a deadline relative to now.
func DeadlineUrgency(deadline, now time.Time) Urgency {
	diff := deadline.Sub(now)

	if diff < 0 {
		return UrgencyRed
	}

	if diff > dueSoonWindow {
		return UrgencyGreen
	}

	return UrgencyYellow
}

// FilterTodos returns the todos matching the filter, preserving their order.
func FilterTodos(todos []*Todo, f Filter, now time.Time) []*Todo {
	matched := []*Todo{}

	for _, todo := range todos {
		if f.Matches(todo, now) {
			matched = append(matched, todo)
		}
	}

	return matched
}

// GroupByDate buckets todos by the calendar date of their deadline in loc, formatted with layout.
// Groups appear in the order their date is first seen; todos keep their relative order.
func GroupByDate(todos []*Todo, layout string, loc *time.Location) []*DateGroup {
	groups := []*DateGroup{}
	index := map[string]*DateGroup{}

	for _, todo := range todos {
		date := todo.Deadline.In(loc).Format(layout)

		group, ok := index[date]
		if !ok {
			group = &DateGroup{Date: date}
			index[date] = group
			groups = append(groups, group)
		}

		group.Todos = append(group.Todos, todo)
	}

	return groups
}
