package routes

import (
	"net/http"
	"todo-go/app/controllers"
	"todo-go/app/logging"
	"todo-go/app/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, listController *controllers.ListController, logger logging.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.HandleFunc("/list", listController.GetList).Methods(http.MethodGet)
	router.HandleFunc("/list/tasks", listController.AddTask).Methods(http.MethodPost)
	router.HandleFunc("/list/tasks/completed", listController.CompletedTasks).Methods(http.MethodGet)
	router.HandleFunc("/list/tasks/incomplete", listController.IncompleteTasks).Methods(http.MethodGet)
	router.HandleFunc("/list/tasks/{index}/complete", listController.CompleteTask).Methods(http.MethodPut)
	router.HandleFunc("/list/tasks/{index}", listController.DeleteTask).Methods(http.MethodDelete)
}
