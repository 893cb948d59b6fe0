package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	repoimpl "github.com/MuusmannMedia/liguster/internal/repository"
	"github.com/MuusmannMedia/liguster/internal/usecase"
)

type fakeAuth struct {
	tokens map[string]string
}

func (f *fakeAuth) CurrentUserID(ctx context.Context) (string, error) {
	return f.tokens[repoimpl.TokenFromContext(ctx)], nil
}

type fakePostsRepo struct {
	posts    []model.Post
	inserted []struct {
		UserID string
		Draft  model.PostDraft
	}
	deleted []string
}

func (f *fakePostsRepo) List(ctx context.Context) ([]model.Post, error) {
	return f.posts, nil
}

func (f *fakePostsRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakePostsRepo) ListByUser(ctx context.Context, userID string) ([]model.Post, error) {
	var out []model.Post
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostsRepo) Insert(ctx context.Context, userID string, draft *model.PostDraft) error {
	f.inserted = append(f.inserted, struct {
		UserID string
		Draft  model.PostDraft
	}{userID, *draft})
	return nil
}

func (f *fakePostsRepo) Update(ctx context.Context, id string, draft *model.PostDraft) error {
	return nil
}

func (f *fakePostsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func newTestRouter(repo *fakePostsRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := &fakeAuth{tokens: map[string]string{"gyldig-token": "u-1"}}
	posts := usecase.NewPostsUseCase(repo, nil)
	beskeder := usecase.NewBeskederUseCase(nil)
	foreninger := usecase.NewForeningUseCase(nil)
	profil := usecase.NewProfilUseCase(nil, nil)

	return NewRouter(Handlers{
		Auth:     auth,
		Posts:    NewPostsHandler(posts),
		Beskeder: NewBeskederHandler(beskeder),
		Forening: NewForeningHandler(foreninger),
		Profil:   NewProfilHandler(profil),
	})
}

func seedPosts() *fakePostsRepo {
	return &fakePostsRepo{posts: []model.Post{
		{
			ID:         "p-1",
			Overskrift: "Trailer udlejes",
			Omraade:    "Vesterbro",
			Text:       "Stor trailer, 200 kr om dagen",
			UserID:     "u-1",
			Latitude:   ptrF(55.6761),
			Longitude:  ptrF(12.5683),
			Kategori:   ptrS("Udlejning"),
		},
		{
			ID:         "p-2",
			Overskrift: "Sofa sælges",
			Omraade:    "Aarhus C",
			Text:       "Pæn treperson, afhentes",
			UserID:     "u-2",
			Latitude:   ptrF(56.1629),
			Longitude:  ptrF(10.2039),
			Kategori:   ptrS("Salg"),
		},
		{
			ID:         "p-3",
			Overskrift: "Efterlysning: kat",
			Omraade:    "Ukendt",
			Text:       "Grå kat, lyder navnet Misser",
			UserID:     "u-2",
		},
	}}
}

func do(r *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeOpslag(t *testing.T, w *httptest.ResponseRecorder) []model.Post {
	t.Helper()
	var resp struct {
		Opslag []model.Post `json:"opslag"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Opslag
}

func TestListPosts_AnonymousBrowsing(t *testing.T) {
	r := newTestRouter(seedPosts())

	w := do(r, http.MethodGet, "/opslag", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeOpslag(t, w), 3)
}

func TestListPosts_RadiusKeepsUnlocatedPosts(t *testing.T) {
	r := newTestRouter(seedPosts())

	// Copenhagen viewer, 5 km radius: the Aarhus sofa drops out, the
	// unlocated cat stays in.
	w := do(r, http.MethodGet, "/opslag?lat=55.6761&lng=12.5683&radius=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	posts := decodeOpslag(t, w)
	require.Len(t, posts, 2)
	assert.Equal(t, "p-1", posts[0].ID)
	assert.Equal(t, "p-3", posts[1].ID)
}

func TestListPosts_KategoriAndQuery(t *testing.T) {
	r := newTestRouter(seedPosts())

	w := do(r, http.MethodGet, "/opslag?kategori=Salg", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodeOpslag(t, w)
	require.Len(t, posts, 1)
	assert.Equal(t, "p-2", posts[0].ID)

	w = do(r, http.MethodGet, "/opslag?q=trailer", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts = decodeOpslag(t, w)
	require.Len(t, posts, 1)
	assert.Equal(t, "p-1", posts[0].ID)
}

func TestListPosts_BadParameters(t *testing.T) {
	r := newTestRouter(seedPosts())

	// lat without lng
	w := do(r, http.MethodGet, "/opslag?lat=55.6", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// non-numeric radius
	w = do(r, http.MethodGet, "/opslag?radius=tre", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// negative radius
	w = do(r, http.MethodGet, "/opslag?radius=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPost_NotFound(t *testing.T) {
	r := newTestRouter(seedPosts())

	w := do(r, http.MethodGet, "/opslag/p-404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePost_RequiresLogin(t *testing.T) {
	repo := seedPosts()
	r := newTestRouter(repo)

	draft := map[string]any{"overskrift": "Værktøj lånes ud", "omraade": "Nørrebro", "text": "Boremaskine mv."}
	w := do(r, http.MethodPost, "/opslag", "", draft)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, repo.inserted)
}

func TestCreatePost_ForcesCallerIdentity(t *testing.T) {
	repo := seedPosts()
	r := newTestRouter(repo)

	draft := map[string]any{"overskrift": "Værktøj lånes ud", "omraade": "Nørrebro", "text": "Boremaskine mv."}
	w := do(r, http.MethodPost, "/opslag", "gyldig-token", draft)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "u-1", repo.inserted[0].UserID)
	assert.Equal(t, "Værktøj lånes ud", repo.inserted[0].Draft.Overskrift)
}

func TestCreatePost_PartialCoordinatesRejected(t *testing.T) {
	repo := seedPosts()
	r := newTestRouter(repo)

	draft := map[string]any{"overskrift": "Test", "omraade": "Et sted", "text": "Tekst", "latitude": 55.6}
	w := do(r, http.MethodPost, "/opslag", "gyldig-token", draft)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.inserted)
}

func TestDeletePost_OwnerOnly(t *testing.T) {
	repo := seedPosts()
	r := newTestRouter(repo)

	// p-2 belongs to u-2; the caller is u-1.
	w := do(r, http.MethodDelete, "/opslag/p-2", "gyldig-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, repo.deleted)

	w = do(r, http.MethodDelete, "/opslag/p-1", "gyldig-token", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"p-1"}, repo.deleted)
}

func TestListMine(t *testing.T) {
	r := newTestRouter(seedPosts())

	w := do(r, http.MethodGet, "/mine/opslag", "gyldig-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodeOpslag(t, w)
	require.Len(t, posts, 1)
	assert.Equal(t, "p-1", posts[0].ID)
}
