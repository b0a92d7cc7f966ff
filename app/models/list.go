package models

import (
	"errors"
	"strings"
)

// ErrMissingTitle is returned when a list is constructed without a title.
var ErrMissingTitle = errors.New("list title is required")

// Task is anything a List can hold: it reports and accepts completion.
type Task interface {
	IsComplete() bool
	MarkComplete()
}

// List is a titled, ordered collection of tasks addressed by position.
// It does no locking of its own.
type List[T Task] struct {
	title string

	// Tasks is the underlying sequence. It may be appended to directly.
	Tasks []T
}

// NewList creates a list with the given title and optional initial tasks.
// A blank title is rejected. A slice passed as tasks... is adopted, not copied.
func NewList[T Task](title string, tasks ...T) (*List[T], error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}
	if tasks == nil {
		tasks = []T{}
	}
	return &List[T]{title: title, Tasks: tasks}, nil
}

// Title returns the list title.
func (l *List[T]) Title() string {
	return l.title
}

// AddTask appends a task to the end of the list.
func (l *List[T]) AddTask(task T) {
	l.Tasks = append(l.Tasks, task)
}

// CompleteTask marks the task at index complete.
// It returns false if there is no task at index.
func (l *List[T]) CompleteTask(index int) bool {
	if !l.inBounds(index) {
		return false
	}
	l.Tasks[index].MarkComplete()
	return true
}

// DeleteTask removes the task at index, shifting later tasks down.
// It returns false if there is no task at index.
func (l *List[T]) DeleteTask(index int) bool {
	if !l.inBounds(index) {
		return false
	}
	last := len(l.Tasks) - 1
	copy(l.Tasks[index:], l.Tasks[index+1:])
	var zero T
	l.Tasks[last] = zero // release the vacated slot
	l.Tasks = l.Tasks[:last]
	return true
}

// CompletedTasks returns the tasks that report complete, in list order.
func (l *List[T]) CompletedTasks() []T {
	return l.filter(true)
}

// IncompleteTasks returns the tasks that do not report complete, in list order.
func (l *List[T]) IncompleteTasks() []T {
	return l.filter(false)
}

func (l *List[T]) filter(complete bool) []T {
	tasks := []T{}
	for _, t := range l.Tasks {
		if t.IsComplete() == complete {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (l *List[T]) inBounds(index int) bool {
	return index >= 0 && index < len(l.Tasks)
}
