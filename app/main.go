package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-go/app/config"
	"todo-go/app/controllers"
	"todo-go/app/logging"
	"todo-go/app/routes"
	"todo-go/app/services"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// Initialize the service layer
	listService, err := services.NewListService(cfg.ListTitle, logger)
	if err != nil {
		log.Fatal("Failed to create list:", err)
	}

	// Initialize the controller layer
	listController := controllers.NewListController(listService)

	// Setup HTTP server
	router := mux.NewRouter()
	routes.RegisterRoutes(router, listController, logger)
	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server is running", "addr", cfg.Addr, "list", cfg.ListTitle)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
