package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MuusmannMedia/liguster/internal/config"
	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
	"github.com/MuusmannMedia/liguster/internal/handler"
	repoimpl "github.com/MuusmannMedia/liguster/internal/repository"
	"github.com/MuusmannMedia/liguster/internal/usecase"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error", "error", err)
		os.Exit(1)
	}

	supabaseClient, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		logger.Error("could not initialize Supabase client", "error", err)
		os.Exit(1)
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		logger.Error("Supabase health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Supabase connection established")

	// Posts read over direct SQL when a database URL is configured, which
	// enables the bounding-box prefilter. Everything else stays on PostgREST.
	var postsRepo repository.PostsRepository
	if cfg.DatabaseURL != "" {
		pg, err := database.NewPostgreSQLClientWithRetry(cfg.DatabaseURL, 5, 3*time.Second)
		if err != nil {
			logger.Error("could not connect to Postgres", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		postsRepo = repoimpl.NewPostgresPostsRepository(pg)
		logger.Info("posts served from direct Postgres connection")
	} else {
		postsRepo = repoimpl.NewSupabasePostsRepository(supabaseClient)
	}

	storage := repoimpl.NewSupabaseImageStorage(supabaseClient)
	auth := repoimpl.NewSupabaseAuthProvider(supabaseClient)

	router := handler.NewRouter(handler.Handlers{
		Auth:     auth,
		Posts:    handler.NewPostsHandler(usecase.NewPostsUseCase(postsRepo, storage)),
		Beskeder: handler.NewBeskederHandler(usecase.NewBeskederUseCase(repoimpl.NewSupabaseThreadsRepository(supabaseClient))),
		Forening: handler.NewForeningHandler(usecase.NewForeningUseCase(repoimpl.NewSupabaseForeningRepository(supabaseClient))),
		Profil:   handler.NewProfilHandler(usecase.NewProfilUseCase(repoimpl.NewSupabaseUsersRepository(supabaseClient), storage)),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("liguster server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
