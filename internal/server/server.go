// Package server boots every subsystem and runs the HTTP server with
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joycybakery/fournil/app/jobs"
	"github.com/joycybakery/fournil/app/routes"
	"github.com/joycybakery/fournil/config"
	"github.com/joycybakery/fournil/pkg/cache"
	"github.com/joycybakery/fournil/pkg/database"
	"github.com/joycybakery/fournil/pkg/logger"
	"github.com/joycybakery/fournil/pkg/metrics"
	"github.com/joycybakery/fournil/pkg/middleware"
	"github.com/joycybakery/fournil/pkg/queue"
	"github.com/joycybakery/fournil/pkg/reqid"
	"github.com/joycybakery/fournil/pkg/router"
	"github.com/joycybakery/fournil/pkg/session"
	"github.com/joycybakery/fournil/pkg/storage"
)

// Start boots config, storage backends, the queue and the HTTP stack, then
// serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Disconnect(ctx) //nolint:errcheck
	}()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("server: ensure indexes", "error", err)
	}
	cancelIndexes()

	// Fan application logs out to the logs collection alongside stdout.
	if mongoSink, err := logger.NewMongoHandler(config.MongoURI(), config.MongoDB(), "logs"); err == nil {
		logger.UseHandler(logger.NewMultiHandler(logger.L.Handler(), mongoSink))
		defer mongoSink.Close()
	} else {
		logger.Warn("server: mongo log sink disabled", "error", err)
	}

	// Redis backs sessions and the durable queue driver. Without it the
	// session store degrades to cookie-only IDs and the queue stays
	// in-memory.
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, using in-memory queue", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseCollection(database.Collection("failedJobs"))

	storage.Connect()

	jobs.Boot()

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers, _ := strconv.Atoi(config.Get("QUEUE_WORKERS", "4"))
	queue.StartWorkers(workersCtx, workers)

	handler := buildHandler()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildHandler assembles the router with the global middleware stack.
func buildHandler() http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. Session           — load/create session cookie via Redis
	//  6. CORS              — set CORS headers
	//  7. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no auth, no rate limit.
	r.HandleFunc("/metrics", metrics.Handler())

	// Serve locally-stored uploads when the local disk is in use.
	if config.StorageDefault() == "local" {
		root := config.StorageLocalRoot()
		if !filepath.IsAbs(root) {
			cwd, _ := os.Getwd()
			root = filepath.Join(cwd, root)
		}
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(root)))
		r.HandleFunc("/storage/*", fs.ServeHTTP)
	}

	routes.RegisterAPI(r)

	return r.Handler()
}
