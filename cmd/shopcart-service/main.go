package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devops-shopcarts/shopcart-service/internal/api/handlers"
	"github.com/devops-shopcarts/shopcart-service/internal/api/middleware"
	"github.com/devops-shopcarts/shopcart-service/internal/config"
	"github.com/devops-shopcarts/shopcart-service/internal/health"
	"github.com/devops-shopcarts/shopcart-service/internal/metrics"
	repository "github.com/devops-shopcarts/shopcart-service/internal/repositories"
	service "github.com/devops-shopcarts/shopcart-service/internal/services"
	"github.com/devops-shopcarts/shopcart-service/internal/utils/response"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	shopcartService := service.NewShopcartService(repos.Shopcart)
	shopcartHandler := handlers.NewShopcartHandler(shopcartService)
	itemService := service.NewItemService(repos.Item, repos.Shopcart)
	itemHandler := handlers.NewItemHandler(itemService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /{$}", index())
	routerMux.HandleFunc("GET /api/v1/shopcarts", shopcartHandler.ListShopcarts())
	routerMux.HandleFunc("POST /api/v1/shopcarts", shopcartHandler.CreateShopcart())
	routerMux.HandleFunc("GET /api/v1/shopcarts/{id}", shopcartHandler.GetShopcart())
	routerMux.HandleFunc("PUT /api/v1/shopcarts/{id}", shopcartHandler.UpdateShopcart())
	routerMux.HandleFunc("DELETE /api/v1/shopcarts/{id}", shopcartHandler.DeleteShopcart())
	routerMux.HandleFunc("PUT /api/v1/shopcarts/{id}/empty", shopcartHandler.EmptyShopcart())
	routerMux.HandleFunc("GET /api/v1/shopcarts/{id}/items", itemHandler.ListItems())
	routerMux.HandleFunc("POST /api/v1/shopcarts/{id}/items", itemHandler.AddItem())
	routerMux.HandleFunc("GET /api/v1/shopcarts/{id}/items/{item_id}", itemHandler.GetItem())
	routerMux.HandleFunc("PUT /api/v1/shopcarts/{id}/items/{item_id}", itemHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/v1/shopcarts/{id}/items/{item_id}", itemHandler.RemoveItem())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}

// index answers the root URL with service metadata.
func index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, map[string]string{
			"name":    "Shopcart REST API Service",
			"version": "1.0.0",
			"path":    "/api/v1/shopcarts",
		})
	}
}
