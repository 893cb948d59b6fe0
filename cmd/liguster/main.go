package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MuusmannMedia/liguster/internal/config"
	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
	"github.com/MuusmannMedia/liguster/internal/infrastructure/geolocate"
	"github.com/MuusmannMedia/liguster/internal/infrastructure/preferences"
	"github.com/MuusmannMedia/liguster/internal/realtime"
	repoimpl "github.com/MuusmannMedia/liguster/internal/repository"
	"github.com/MuusmannMedia/liguster/internal/tui"
	"github.com/MuusmannMedia/liguster/internal/usecase"
)

// tokenAuth fixes the access token once from the environment; the TUI has
// no per-request Authorization header to read it from.
type tokenAuth struct {
	inner repository.AuthProvider
	token string
}

func (a tokenAuth) CurrentUserID(ctx context.Context) (string, error) {
	if a.token != "" {
		ctx = repoimpl.ContextWithToken(ctx, a.token)
	}
	return a.inner.CurrentUserID(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	supabaseClient, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		log.Fatalf("could not initialize Supabase client: %v", err)
	}

	var locator repository.Geolocator
	if cfg.StaticLatitude != nil && cfg.StaticLongitude != nil {
		locator = geolocate.NewStaticProvider(*cfg.StaticLatitude, *cfg.StaticLongitude)
	} else {
		locator = geolocate.NewIPProvider(cfg.GeoIPEndpoint)
	}

	var prefs repository.PreferenceStore
	if cfg.PreferenceBackend == "keyring" {
		prefs = preferences.NewKeyringStore()
	} else {
		store, err := preferences.NewFileStore("")
		if err != nil {
			log.Fatalf("could not open preference store: %v", err)
		}
		prefs = store
	}

	auth := tokenAuth{
		inner: repoimpl.NewSupabaseAuthProvider(supabaseClient),
		token: os.Getenv("LIGUSTER_ACCESS_TOKEN"),
	}

	notifier := tui.NewStatusNotifier()
	feed := usecase.NewFeedUseCase(
		repoimpl.NewSupabasePostsRepository(supabaseClient),
		auth,
		locator,
		prefs,
		notifier,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optionally watch one conversation for live messages; new messages
	// land in the status bar.
	if threadID := os.Getenv("LIGUSTER_WATCH_THREAD"); threadID != "" {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		sub := realtime.NewSubscriber(cfg.SupabaseURL, cfg.RealtimeURL, cfg.SupabaseAnonKey, threadID, func(event *realtime.MessageEvent) {
			if event.Type == "INSERT" && event.Message != nil {
				notifier.Notify("Ny besked", event.Message.Text)
			}
		}, logger)
		go func() {
			if err := sub.Start(ctx); err != nil {
				logger.Error("realtime subscription stopped", "error", err)
			}
		}()
	}

	program := tea.NewProgram(tui.NewApp(feed, notifier), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("could not run program: %v", err)
	}
}
