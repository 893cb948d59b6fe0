package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

type stubForeningRepo struct {
	foreninger map[string]*model.Forening
	members    map[string]*model.Foreningsmedlem // key: foreningID/userID
	nextID     int
	removed    []string
}

func newStubForeningRepo() *stubForeningRepo {
	return &stubForeningRepo{
		foreninger: map[string]*model.Forening{},
		members:    map[string]*model.Foreningsmedlem{},
	}
}

func memberKey(foreningID, userID string) string {
	return foreningID + "/" + userID
}

func (s *stubForeningRepo) List(ctx context.Context, search string) ([]model.Forening, error) {
	var out []model.Forening
	for _, f := range s.foreninger {
		out = append(out, *f)
	}
	return out, nil
}

func (s *stubForeningRepo) GetByID(ctx context.Context, id string) (*model.Forening, error) {
	f, ok := s.foreninger[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return f, nil
}

func (s *stubForeningRepo) Create(ctx context.Context, f *model.Forening) (string, error) {
	s.nextID++
	id := fmt.Sprintf("f-%d", s.nextID)
	stored := *f
	stored.ID = id
	s.foreninger[id] = &stored
	return id, nil
}

func (s *stubForeningRepo) AddMember(ctx context.Context, m *model.Foreningsmedlem) error {
	s.members[memberKey(m.ForeningID, m.UserID)] = m
	return nil
}

func (s *stubForeningRepo) SetMemberStatus(ctx context.Context, foreningID, userID, status string) error {
	m, ok := s.members[memberKey(foreningID, userID)]
	if !ok {
		return model.ErrNotFound
	}
	m.Status = status
	return nil
}

func (s *stubForeningRepo) RemoveMember(ctx context.Context, foreningID, userID string) error {
	key := memberKey(foreningID, userID)
	if _, ok := s.members[key]; !ok {
		return model.ErrNotFound
	}
	delete(s.members, key)
	s.removed = append(s.removed, key)
	return nil
}

func (s *stubForeningRepo) ListMembers(ctx context.Context, foreningID string) ([]model.Foreningsmedlem, error) {
	var out []model.Foreningsmedlem
	for _, m := range s.members {
		if m.ForeningID == foreningID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *stubForeningRepo) GetMember(ctx context.Context, foreningID, userID string) (*model.Foreningsmedlem, error) {
	m, ok := s.members[memberKey(foreningID, userID)]
	if !ok {
		return nil, model.ErrNotFound
	}
	return m, nil
}

func TestForeningCreate_BootstrapsAdminMembership(t *testing.T) {
	repo := newStubForeningRepo()
	foreninger := NewForeningUseCase(repo)

	id, err := foreninger.Create(context.Background(), "u-1", "Grundejerforeningen Syrenvej", "Aalborg", "Vejlaug og fællesarealer")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	m, err := repo.GetMember(context.Background(), id, "u-1")
	require.NoError(t, err)
	assert.Equal(t, model.RolleAdmin, m.Rolle)
	assert.Equal(t, model.StatusApproved, m.Status)
	assert.True(t, m.IsApprovedAdmin())
}

func TestForeningCreate_Validation(t *testing.T) {
	foreninger := NewForeningUseCase(newStubForeningRepo())

	_, err := foreninger.Create(context.Background(), "", "Navn", "Sted", "Beskrivelse")
	assert.ErrorIs(t, err, model.ErrUnauthenticated)

	_, err = foreninger.Create(context.Background(), "u-1", "  ", "Sted", "Beskrivelse")
	assert.Error(t, err)
}

func TestApplyApproveFlow(t *testing.T) {
	repo := newStubForeningRepo()
	foreninger := NewForeningUseCase(repo)

	id, err := foreninger.Create(context.Background(), "admin", "Haveforeningen Solhøj", "Odense", "Kolonihaver")
	require.NoError(t, err)

	require.NoError(t, foreninger.Apply(context.Background(), "ansøger", id))
	m, err := repo.GetMember(context.Background(), id, "ansøger")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, m.Status)
	assert.Equal(t, model.RolleMedlem, m.Rolle)

	// Non-admins cannot approve, pending members included.
	err = foreninger.Approve(context.Background(), "ansøger", id, "ansøger")
	assert.ErrorIs(t, err, model.ErrNotOwner)

	require.NoError(t, foreninger.Approve(context.Background(), "admin", id, "ansøger"))
	m, err = repo.GetMember(context.Background(), id, "ansøger")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, m.Status)
}

func TestReject_RemovesApplication(t *testing.T) {
	repo := newStubForeningRepo()
	foreninger := NewForeningUseCase(repo)

	id, err := foreninger.Create(context.Background(), "admin", "Andelsboligforeningen Kilden", "Vejle", "Fælleshus")
	require.NoError(t, err)
	require.NoError(t, foreninger.Apply(context.Background(), "ansøger", id))

	require.NoError(t, foreninger.Reject(context.Background(), "admin", id, "ansøger"))
	_, err = repo.GetMember(context.Background(), id, "ansøger")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestApply_UnknownForening(t *testing.T) {
	foreninger := NewForeningUseCase(newStubForeningRepo())
	err := foreninger.Apply(context.Background(), "u-1", "f-404")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
