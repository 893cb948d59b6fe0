package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// stubPostsRepo counts invocations and lets tests control List results,
// including blocking a call to force out-of-order completion.
type stubPostsRepo struct {
	mu          sync.Mutex
	listFn      func(ctx context.Context) ([]model.Post, error)
	listCalls   int
	insertCalls int
	insertErr   error
}

func (s *stubPostsRepo) List(ctx context.Context) ([]model.Post, error) {
	s.mu.Lock()
	s.listCalls++
	fn := s.listFn
	s.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil, nil
}

func (s *stubPostsRepo) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func (s *stubPostsRepo) Insert(ctx context.Context, userID string, draft *model.PostDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertCalls++
	return s.insertErr
}

func (s *stubPostsRepo) InsertCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertCalls
}

func (s *stubPostsRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	return nil, model.ErrNotFound
}

func (s *stubPostsRepo) ListByUser(ctx context.Context, userID string) ([]model.Post, error) {
	return nil, nil
}

func (s *stubPostsRepo) Update(ctx context.Context, id string, draft *model.PostDraft) error {
	return nil
}

func (s *stubPostsRepo) Delete(ctx context.Context, id string) error { return nil }

type stubAuth struct {
	userID string
	err    error
}

func (s *stubAuth) CurrentUserID(ctx context.Context) (string, error) { return s.userID, s.err }

type stubLocator struct {
	loc *model.UserLocation
	err error
}

func (s *stubLocator) CurrentLocation(ctx context.Context) (*model.UserLocation, error) {
	return s.loc, s.err
}

type stubPrefs struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newStubPrefs() *stubPrefs { return &stubPrefs{values: map[string]string{}} }

func (s *stubPrefs) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", repository.ErrPreferenceNotFound
	}
	return v, nil
}

func (s *stubPrefs) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, title+": "+message)
}

func (n *recordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

func somePosts(ids ...string) []model.Post {
	posts := make([]model.Post, len(ids))
	for i, id := range ids {
		posts[i] = model.Post{ID: id, Overskrift: "Opslag " + id, Omraade: "Nørrebro", Text: "tekst"}
	}
	return posts
}

func validDraft() *model.PostDraft {
	return &model.PostDraft{Overskrift: "Stige udlånes", Omraade: "Valby", Text: "3 meter"}
}

func TestInitialize_DefaultsWhenEverythingUnavailable(t *testing.T) {
	feed := NewFeedUseCase(
		&stubPostsRepo{},
		&stubAuth{err: errors.New("gotrue down")},
		&stubLocator{err: errors.New("no position")},
		newStubPrefs(),
		&recordingNotifier{},
	)

	feed.Initialize(context.Background())

	assert.Empty(t, feed.UserID())
	assert.Nil(t, feed.UserLocation())
	assert.Equal(t, model.DefaultRadiusKm, feed.Radius())
}

func TestInitialize_RestoresPersistedRadius(t *testing.T) {
	prefs := newStubPrefs()
	feed := NewFeedUseCase(&stubPostsRepo{}, &stubAuth{userID: "u-1"}, &stubLocator{}, prefs, &recordingNotifier{})

	feed.HandleRadiusChange(10)
	assert.Equal(t, "10", prefs.values[model.RadiusPreferenceKey])

	// A fresh hook instance reloads the saved value.
	feed2 := NewFeedUseCase(&stubPostsRepo{}, &stubAuth{userID: "u-1"}, &stubLocator{}, prefs, &recordingNotifier{})
	feed2.Initialize(context.Background())
	assert.Equal(t, 10.0, feed2.Radius())
}

func TestHandleRadiusChange_PersistFailureIsSwallowed(t *testing.T) {
	prefs := newStubPrefs()
	prefs.setErr = errors.New("disk full")
	feed := NewFeedUseCase(&stubPostsRepo{}, &stubAuth{}, &stubLocator{}, prefs, &recordingNotifier{})

	feed.HandleRadiusChange(7)

	// In-memory state updates even though persistence failed.
	assert.Equal(t, 7.0, feed.Radius())
}

func TestFetchPosts_Success(t *testing.T) {
	repo := &stubPostsRepo{listFn: func(ctx context.Context) ([]model.Post, error) {
		return somePosts("1", "2"), nil
	}}
	feed := NewFeedUseCase(repo, &stubAuth{}, &stubLocator{}, newStubPrefs(), &recordingNotifier{})

	feed.FetchPosts(context.Background())

	assert.False(t, feed.Loading())
	got := feed.FilteredPosts()
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
}

func TestFetchPosts_FailureEmptiesListAndNotifies(t *testing.T) {
	repo := &stubPostsRepo{listFn: func(ctx context.Context) ([]model.Post, error) {
		return nil, errors.New("network down")
	}}
	notifier := &recordingNotifier{}
	feed := NewFeedUseCase(repo, &stubAuth{}, &stubLocator{}, newStubPrefs(), notifier)

	feed.FetchPosts(context.Background())

	assert.Empty(t, feed.FilteredPosts())
	assert.False(t, feed.Loading(), "loading must clear on failure too")
	assert.Equal(t, 1, notifier.Count())
}

func TestFetchPosts_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	repo := &stubPostsRepo{}
	repo.listFn = func(ctx context.Context) ([]model.Post, error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()

		if first {
			// The first-issued fetch stalls until after the second has
			// completed and applied.
			<-release
			return somePosts("old"), nil
		}
		return somePosts("new"), nil
	}

	feed := NewFeedUseCase(repo, &stubAuth{}, &stubLocator{}, newStubPrefs(), &recordingNotifier{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		feed.FetchPosts(context.Background()) // A, issued first, completes last
	}()

	// Make sure A is issued before B.
	require.Eventually(t, func() bool { return repo.ListCalls() == 1 }, time.Second, time.Millisecond)

	feed.Refresh(context.Background()) // B, issued second, completes first
	got := feed.FilteredPosts()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	close(release)
	wg.Wait()

	// A's late response must not overwrite B's.
	got = feed.FilteredPosts()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
	assert.False(t, feed.Loading())
}

func TestCreatePost_UnauthenticatedIsRejectedLocally(t *testing.T) {
	repo := &stubPostsRepo{}
	notifier := &recordingNotifier{}
	feed := NewFeedUseCase(repo, &stubAuth{userID: ""}, &stubLocator{}, newStubPrefs(), notifier)
	feed.Initialize(context.Background())

	err := feed.CreatePost(context.Background(), validDraft())

	assert.ErrorIs(t, err, model.ErrUnauthenticated)
	assert.Equal(t, 0, repo.InsertCalls(), "no network call may be issued")
	assert.Equal(t, 0, repo.ListCalls())
	assert.Equal(t, 1, notifier.Count())
}

func TestCreatePost_SuccessTriggersRefetch(t *testing.T) {
	repo := &stubPostsRepo{listFn: func(ctx context.Context) ([]model.Post, error) {
		return somePosts("fresh"), nil
	}}
	feed := NewFeedUseCase(repo, &stubAuth{userID: "u-1"}, &stubLocator{}, newStubPrefs(), &recordingNotifier{})
	feed.Initialize(context.Background())

	require.NoError(t, feed.CreatePost(context.Background(), validDraft()))

	assert.Equal(t, 1, repo.InsertCalls())
	assert.Equal(t, 1, repo.ListCalls(), "successful create refetches the feed")
	assert.Len(t, feed.FilteredPosts(), 1)
}

func TestCreatePost_BackendFailureDoesNotRefetch(t *testing.T) {
	repo := &stubPostsRepo{insertErr: errors.New("rls violation")}
	notifier := &recordingNotifier{}
	feed := NewFeedUseCase(repo, &stubAuth{userID: "u-1"}, &stubLocator{}, newStubPrefs(), notifier)
	feed.Initialize(context.Background())

	err := feed.CreatePost(context.Background(), validDraft())

	assert.Error(t, err)
	assert.Equal(t, 1, repo.InsertCalls())
	assert.Equal(t, 0, repo.ListCalls(), "failed create must not refetch")
	assert.Equal(t, 1, notifier.Count())
}

func TestCreatePost_InvalidDraftIsRejectedBeforeNetwork(t *testing.T) {
	repo := &stubPostsRepo{}
	feed := NewFeedUseCase(repo, &stubAuth{userID: "u-1"}, &stubLocator{}, newStubPrefs(), &recordingNotifier{})
	feed.Initialize(context.Background())

	lat := 55.0
	draft := validDraft()
	draft.Latitude = &lat // longitude missing

	err := feed.CreatePost(context.Background(), draft)
	assert.ErrorIs(t, err, model.ErrPartialCoordinates)
	assert.Equal(t, 0, repo.InsertCalls())
}

func TestFilteredPosts_UsesLiveCriteria(t *testing.T) {
	lat1, lng1 := 55.6900, 12.5500 // ~2 km from the stub location
	kategori := "Værktøj"
	repo := &stubPostsRepo{listFn: func(ctx context.Context) ([]model.Post, error) {
		return []model.Post{
			{ID: "near", Overskrift: "Boremaskine", Omraade: "Nørrebro", Text: "udlånes", Kategori: &kategori, Latitude: &lat1, Longitude: &lng1},
			{ID: "nowhere", Overskrift: "Sofa", Omraade: "Vesterbro", Text: "bortgives"},
		}, nil
	}}
	feed := NewFeedUseCase(repo,
		&stubAuth{userID: "u-1"},
		&stubLocator{loc: &model.UserLocation{Latitude: 55.6761, Longitude: 12.5683}},
		newStubPrefs(),
		&recordingNotifier{})
	feed.Initialize(context.Background())
	feed.FetchPosts(context.Background())

	assert.Len(t, feed.FilteredPosts(), 2)

	feed.SetSearchQuery("boremaskine")
	got := feed.FilteredPosts()
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].ID)

	// Clearing the query restores everything again.
	feed.SetSearchQuery("")
	assert.Len(t, feed.FilteredPosts(), 2)

	feed.SetKategoriFilter("Byttes")
	assert.Empty(t, feed.FilteredPosts())
	feed.SetKategoriFilter(model.AlleKategorier)

	// Tiny radius drops the located post but keeps the unlocated one.
	feed.HandleRadiusChange(0.5)
	got = feed.FilteredPosts()
	require.Len(t, got, 1)
	assert.Equal(t, "nowhere", got[0].ID)
}
