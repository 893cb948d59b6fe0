package usecase

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
	"github.com/MuusmannMedia/liguster/internal/domain/service"
)

// Notifier surfaces non-blocking, user-visible error messages. The TUI
// shows them in a status line; the default logs them.
type Notifier interface {
	Notify(title, message string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string) {
	log.Printf("%s: %s", title, message)
}

// FeedUseCase is the listing feed: it owns the in-memory post list, the
// user's location and the filter criteria, and derives the filtered view
// on demand. All collaborators are injected; nothing reaches for a
// global client.
type FeedUseCase struct {
	posts    repository.PostsRepository
	auth     repository.AuthProvider
	locator  repository.Geolocator
	prefs    repository.PreferenceStore
	notifier Notifier

	mu           sync.Mutex
	userID       string
	userLocation *model.UserLocation
	allPosts     []model.Post
	loading      bool

	searchQuery    string
	kategoriFilter string
	radiusKm       float64

	// Fetch sequencing: fetches are tagged when issued and a completion
	// only applies if no later-issued fetch has applied first. This keeps
	// the list correct when refreshes race.
	issuedSeq  uint64
	appliedSeq uint64
}

// NewFeedUseCase wires the feed. Any of locator/prefs may be nil-ish
// stubs in hosts that cannot provide them.
func NewFeedUseCase(
	posts repository.PostsRepository,
	auth repository.AuthProvider,
	locator repository.Geolocator,
	prefs repository.PreferenceStore,
	notifier Notifier,
) *FeedUseCase {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &FeedUseCase{
		posts:          posts,
		auth:           auth,
		locator:        locator,
		prefs:          prefs,
		notifier:       notifier,
		kategoriFilter: model.AlleKategorier,
		radiusKm:       model.DefaultRadiusKm,
	}
}

// Initialize resolves the current user, restores the persisted radius and
// acquires a best-effort position. None of the three may fail the feed:
// each failure degrades to its default and is logged at most.
func (u *FeedUseCase) Initialize(ctx context.Context) {
	userID, err := u.auth.CurrentUserID(ctx)
	if err != nil {
		log.Printf("kunne ikke hente bruger: %v", err)
		userID = ""
	}

	radius := model.DefaultRadiusKm
	if u.prefs != nil {
		if saved, err := u.prefs.Get(model.RadiusPreferenceKey); err == nil {
			if parsed, err := strconv.ParseFloat(saved, 64); err == nil && parsed > 0 {
				radius = parsed
			}
		}
	}

	var loc *model.UserLocation
	if u.locator != nil {
		loc, err = u.locator.CurrentLocation(ctx)
		if err != nil {
			// Distance filtering simply stays off.
			log.Printf("lokation ikke tilgængelig: %v", err)
			loc = nil
		}
	}

	u.mu.Lock()
	u.userID = userID
	u.radiusKm = radius
	u.userLocation = loc
	u.mu.Unlock()
}

// FetchPosts loads all posts, newest first, replacing the in-memory list
// atomically. On failure the list is emptied and the user is notified;
// the error never propagates past this boundary. The loading flag is
// cleared whatever the outcome.
func (u *FeedUseCase) FetchPosts(ctx context.Context) {
	u.mu.Lock()
	u.issuedSeq++
	seq := u.issuedSeq
	u.loading = true
	u.mu.Unlock()

	posts, err := u.posts.List(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	// The latest issued fetch clears the spinner when it completes, even
	// if its response is discarded below.
	if seq == u.issuedSeq {
		u.loading = false
	}

	// A response loses to any later-issued fetch that already applied.
	if seq <= u.appliedSeq {
		return
	}
	u.appliedSeq = seq

	if err != nil {
		u.allPosts = nil
		u.notifier.Notify("Fejl", "Kunne ikke hente opslag: "+err.Error())
		return
	}
	u.allPosts = posts
}

// Refresh re-runs FetchPosts; pull-to-refresh in UI terms.
func (u *FeedUseCase) Refresh(ctx context.Context) {
	u.FetchPosts(ctx)
}

// CreatePost validates and inserts a new listing for the current user,
// then refetches so server-assigned fields appear. The draft's id and
// user_id are never trusted; the repository forces the authenticated
// identity. Returns model.ErrUnauthenticated without touching the
// network when nobody is signed in.
func (u *FeedUseCase) CreatePost(ctx context.Context, draft *model.PostDraft) error {
	u.mu.Lock()
	userID := u.userID
	u.mu.Unlock()

	if userID == "" {
		u.notifier.Notify("Fejl", "Du skal være logget ind for at oprette et opslag.")
		return model.ErrUnauthenticated
	}

	if err := draft.Validate(); err != nil {
		u.notifier.Notify("Fejl", err.Error())
		return err
	}

	if err := u.posts.Insert(ctx, userID, draft); err != nil {
		u.notifier.Notify("Fejl", "Kunne ikke oprette opslag: "+err.Error())
		return err
	}

	u.FetchPosts(ctx)
	return nil
}

// SetSearchQuery updates the free-text filter. Pure state; the next
// FilteredPosts call sees it.
func (u *FeedUseCase) SetSearchQuery(q string) {
	u.mu.Lock()
	u.searchQuery = q
	u.mu.Unlock()
}

// SetKategoriFilter updates the category filter.
func (u *FeedUseCase) SetKategoriFilter(kategori string) {
	u.mu.Lock()
	u.kategoriFilter = kategori
	u.mu.Unlock()
}

// HandleRadiusChange updates the radius and persists it. Persistence is
// convenience, not critical state: failure is logged and swallowed.
func (u *FeedUseCase) HandleRadiusChange(km float64) {
	u.mu.Lock()
	u.radiusKm = km
	u.mu.Unlock()

	if u.prefs == nil {
		return
	}
	if err := u.prefs.Set(model.RadiusPreferenceKey, strconv.FormatFloat(km, 'f', -1, 64)); err != nil {
		log.Printf("kunne ikke gemme radius: %v", err)
	}
}

// FilteredPosts recomputes the derived view from the current inputs. It
// is a pure function of the post list, criteria and location; no cached
// state is involved.
func (u *FeedUseCase) FilteredPosts() []model.Post {
	u.mu.Lock()
	posts := u.allPosts
	criteria := service.FilterCriteria{
		Query:    u.searchQuery,
		Kategori: u.kategoriFilter,
		RadiusKm: u.radiusKm,
	}
	loc := u.userLocation
	u.mu.Unlock()

	return service.FilterPosts(posts, criteria, loc)
}

// Loading reports whether a fetch for the latest request is in flight.
func (u *FeedUseCase) Loading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loading
}

// UserID returns the resolved user id, empty when browsing anonymously.
func (u *FeedUseCase) UserID() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.userID
}

// UserLocation returns the acquired position, nil when unknown.
func (u *FeedUseCase) UserLocation() *model.UserLocation {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.userLocation
}

// Radius returns the active search radius in kilometers.
func (u *FeedUseCase) Radius() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.radiusKm
}

// SearchQuery returns the active free-text filter.
func (u *FeedUseCase) SearchQuery() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.searchQuery
}

// KategoriFilter returns the active category filter.
func (u *FeedUseCase) KategoriFilter() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.kategoriFilter
}
