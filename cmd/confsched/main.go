package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"confsched/internal/config"
	"confsched/internal/feed"
	"confsched/internal/http-server/handlers/schedule/getCurrent"
	"confsched/internal/http-server/handlers/schedule/getNext"
	"confsched/internal/http-server/handlers/schedule/getRoomEvents"
	"confsched/internal/http-server/handlers/schedule/getRooms"
	"confsched/internal/http-server/handlers/schedule/getStatus"
	"confsched/internal/http-server/handlers/schedule/reloadSchedule"
	"confsched/internal/http-server/middleware/mwlogger"
	"confsched/internal/lib/logger/handlers/slogpretty"
	"confsched/internal/lib/logger/sl"
	renderer "confsched/internal/render"
	"confsched/internal/schedule"
	"confsched/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const asOfLayout = "2006-01-02T15:04:05"

const snapshotsToKeep = 20

type flags struct {
	once bool
	at   string
}

func main() {
	fl := parseFlags()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting confsched", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	var storage *postgres.Storage
	if cfg.Database.Enabled {
		var err error
		storage, err = postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
	}

	store := schedule.NewStore()
	fetcher := feed.NewFetcher(cfg.Feed.URL, cfg.Feed.Timeout)
	opts := schedule.Options{ExcludeCancelledFromNext: cfg.Feed.ExcludeCancelledFromNext}

	var saver feed.SnapshotSaver
	if storage != nil {
		saver = storage
	}
	refresher := feed.NewRefresher(log, fetcher, store, opts, saver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := refresher.Refresh(ctx, true); err != nil {
		log.Error("initial schedule fetch failed", sl.Err(err))

		if storage != nil {
			document, fetchedAt, serr := storage.LatestSnapshot()
			if serr != nil {
				log.Error("no snapshot to fall back to", sl.Err(serr))
			} else if rerr := refresher.Restore(document, fetchedAt); rerr != nil {
				log.Error("failed to restore snapshot", sl.Err(rerr))
			}
		}
	}

	if fl.once {
		runOnce(log, cfg, store, fl.at)
		return
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/rooms", getRooms.New(log, store))
	router.Get("/rooms/{room}/events", getRoomEvents.New(log, store))
	router.Get("/schedule/current", getCurrent.New(log, store))
	router.Get("/schedule/next", getNext.New(log, store))
	router.Get("/schedule/status", getStatus.New(log, store))
	router.Post("/schedule/reload", reloadSchedule.New(log, refresher))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	c := cron.New()
	if _, err := c.AddFunc(cfg.Feed.Refresh, func() {
		if err := refresher.Refresh(ctx, true); err != nil {
			log.Error("scheduled refresh failed", sl.Err(err))
		}
		if storage != nil {
			if pruned, err := storage.PruneSnapshots(snapshotsToKeep); err != nil {
				log.Error("failed to prune snapshots", sl.Err(err))
			} else if pruned > 0 {
				log.Debug("snapshots pruned", slog.Int64("count", pruned))
			}
		}
	}); err != nil {
		log.Error("invalid refresh schedule", sl.Err(err))
		os.Exit(1)
	}
	c.Start()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	<-c.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if storage != nil {
		if err := storage.Close(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
		}
		log.Info("postgres connection closed")
	}
}

func runOnce(log *slog.Logger, cfg *config.Config, store *schedule.Store, at string) {
	ix := store.Index()
	if ix == nil {
		log.Error("no schedule available to render")
		os.Exit(1)
	}

	if at == "" {
		at = time.Now().Format(asOfLayout)
	}

	writer := renderer.NewWriter(log, cfg.Render.TemplatePath, cfg.Render.OutputDir)
	if err := writer.WriteRooms(ix, at); err != nil {
		log.Error("failed to render room files", sl.Err(err))
		os.Exit(1)
	}

	log.Info("room files rendered", slog.String("output_dir", cfg.Render.OutputDir))
}

func parseFlags() flags {
	var fl flags

	flag.BoolVar(&fl.once, "once", false, "Fetch the feed, render room files, and exit")
	flag.StringVar(&fl.at, "at", "", "As-of timestamp for -once rendering (default: now)")

	flag.Parse()

	return fl
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
