package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"todo-go/app/models"
	"todo-go/app/services"

	"github.com/gorilla/mux"
)

// ListController handles HTTP requests for the served list.
type ListController struct {
	Service *services.ListService
}

// NewListController creates a new ListController.
func NewListController(service *services.ListService) *ListController {
	return &ListController{Service: service}
}

type listResponse struct {
	Title string        `json:"title"`
	Tasks []models.Item `json:"tasks"`
}

// GetList handles GET /list.
func (c *ListController) GetList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{
		Title: c.Service.Title(),
		Tasks: c.Service.GetTasks(),
	})
}

// AddTask handles POST /list/tasks.
func (c *ListController) AddTask(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	item, err := c.Service.AddTask(payload.Title)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// CompleteTask handles PUT /list/tasks/{index}/complete.
func (c *ListController) CompleteTask(w http.ResponseWriter, r *http.Request) {
	index, ok := taskIndex(w, r)
	if !ok {
		return
	}
	if err := c.Service.CompleteTask(index); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Task completed successfully"))
}

// DeleteTask handles DELETE /list/tasks/{index}.
func (c *ListController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	index, ok := taskIndex(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteTask(index); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompletedTasks handles GET /list/tasks/completed.
func (c *ListController) CompletedTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Service.CompletedTasks())
}

// IncompleteTasks handles GET /list/tasks/incomplete.
func (c *ListController) IncompleteTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Service.IncompleteTasks())
}

func taskIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid task index", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrTaskNotFound) {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
