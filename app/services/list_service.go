package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"todo-go/app/logging"
	"todo-go/app/models"
)

var (
	// ErrTaskNotFound is returned when no task exists at an index.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTaskTitle is returned when adding a task without a title.
	ErrEmptyTaskTitle = errors.New("task title is required")
)

// ListService handles list operations for concurrent callers.
type ListService struct {
	mu     sync.Mutex
	list   *models.List[*models.Item]
	logger logging.Logger
}

// NewListService creates a ListService over a new, empty list.
func NewListService(title string, logger logging.Logger) (*ListService, error) {
	list, err := models.NewList[*models.Item](title)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &ListService{list: list, logger: logger}, nil
}

// Title returns the list title.
func (s *ListService) Title() string {
	return s.list.Title()
}

// GetTasks returns a snapshot of all tasks in list order.
func (s *ListService) GetTasks() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.list.Tasks)
}

// AddTask appends a new incomplete task.
func (s *ListService) AddTask(title string) (models.Item, error) {
	if strings.TrimSpace(title) == "" {
		return models.Item{}, ErrEmptyTaskTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.NewItem(title)
	s.list.AddTask(item)
	s.logger.Info("task added", "list", s.list.Title(), "index", len(s.list.Tasks)-1)
	return *item, nil
}

// CompleteTask marks the task at index complete.
func (s *ListService) CompleteTask(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.list.CompleteTask(index) {
		s.logger.Debug("complete skipped", "list", s.list.Title(), "index", index)
		return fmt.Errorf("complete task %d: %w", index, ErrTaskNotFound)
	}
	s.logger.Info("task completed", "list", s.list.Title(), "index", index)
	return nil
}

// DeleteTask removes the task at index.
func (s *ListService) DeleteTask(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.list.DeleteTask(index) {
		s.logger.Debug("delete skipped", "list", s.list.Title(), "index", index)
		return fmt.Errorf("delete task %d: %w", index, ErrTaskNotFound)
	}
	s.logger.Info("task deleted", "list", s.list.Title(), "index", index)
	return nil
}

// CompletedTasks returns the completed tasks in list order.
func (s *ListService) CompletedTasks() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.list.CompletedTasks())
}

// IncompleteTasks returns the incomplete tasks in list order.
func (s *ListService) IncompleteTasks() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.list.IncompleteTasks())
}

// snapshot copies items so callers never share state with the list.
func snapshot(tasks []*models.Item) []models.Item {
	items := make([]models.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, *t)
	}
	return items
}
