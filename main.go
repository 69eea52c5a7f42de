package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/crystalpine/devops-lab/config"
	"github.com/crystalpine/devops-lab/controllers"
	"github.com/crystalpine/devops-lab/database"
	"github.com/crystalpine/devops-lab/lib/kubernetes"
	"github.com/crystalpine/devops-lab/routes"
	"github.com/crystalpine/devops-lab/services"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// run returns instead of exiting so deferred cleanup always happens
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	checkers, cleanup, err := buildCheckers(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	versions := services.NewVersionService()
	statuses := services.NewStatusService(versions, cfg.CheckTimeout, checkers...)
	health := controllers.NewHealthController(cfg.AppName, versions, statuses)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.NewRouter(cfg, health),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("🚀 %s starting on %s (root: %s)", cfg.AppName, server.Addr, cfg.RootMode)
	return serve(ctx, server, cfg.ShutdownTimeout)
}

// serve runs server until ctx is done, then shuts it down within timeout.
// A listen failure is returned to the caller.
func serve(ctx context.Context, server *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Println("🛑 Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// buildCheckers wires the optional dependency checks enabled by cfg.
// cleanup is always safe to call.
func buildCheckers(cfg config.Config) ([]services.Checker, func(), error) {
	var checkers []services.Checker
	cleanup := func() {}

	if cfg.DatabaseURL != "" {
		db, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, cleanup, err
		}
		checkers = append(checkers, services.NewDatabaseChecker(db))
		cleanup = func() {
			if err := db.Close(); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}
		log.Println("💡 Dependency check enabled: postgres")
	}

	if cfg.K8sProbe {
		client, err := kubernetes.NewClient(kubernetes.ProxyOptions{
			Host:    cfg.K8sProxyURL,
			Timeout: cfg.CheckTimeout,
		})
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		checkers = append(checkers, services.NewKubernetesChecker(client))
		log.Println("💡 Dependency check enabled: kubernetes")
	}

	return checkers, cleanup, nil
}
