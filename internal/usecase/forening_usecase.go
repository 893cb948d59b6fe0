package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// ForeningUseCase handles associations and membership flows.
type ForeningUseCase struct {
	foreninger repository.ForeningRepository
}

func NewForeningUseCase(foreninger repository.ForeningRepository) *ForeningUseCase {
	return &ForeningUseCase{foreninger: foreninger}
}

// List returns foreninger, optionally narrowed by free-text search.
func (u *ForeningUseCase) List(ctx context.Context, search string) ([]model.Forening, error) {
	return u.foreninger.List(ctx, strings.TrimSpace(search))
}

// Get returns one forening.
func (u *ForeningUseCase) Get(ctx context.Context, id string) (*model.Forening, error) {
	return u.foreninger.GetByID(ctx, id)
}

// Create stores a new forening and makes the creator an approved admin
// member in the same action. A failed membership insert does not roll
// back the forening; it is logged, matching how the clients behave.
func (u *ForeningUseCase) Create(ctx context.Context, userID, navn, sted, beskrivelse string) (string, error) {
	if userID == "" {
		return "", model.ErrUnauthenticated
	}
	navn, sted, beskrivelse = strings.TrimSpace(navn), strings.TrimSpace(sted), strings.TrimSpace(beskrivelse)
	if navn == "" {
		return "", model.ErrMissingField("navn")
	}
	if sted == "" {
		return "", model.ErrMissingField("sted")
	}
	if beskrivelse == "" {
		return "", model.ErrMissingField("beskrivelse")
	}

	id, err := u.foreninger.Create(ctx, &model.Forening{
		Navn:        navn,
		Sted:        sted,
		Beskrivelse: beskrivelse,
		OprettetAf:  userID,
	})
	if err != nil {
		return "", err
	}

	member := &model.Foreningsmedlem{
		ForeningID: id,
		UserID:     userID,
		Rolle:      model.RolleAdmin,
		Status:     model.StatusApproved,
	}
	if err := u.foreninger.AddMember(ctx, member); err != nil {
		log.Printf("kunne ikke tilføje medlemskab for %s: %v", userID, err)
	}
	return id, nil
}

// Apply files a pending membership application.
func (u *ForeningUseCase) Apply(ctx context.Context, userID, foreningID string) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	if _, err := u.foreninger.GetByID(ctx, foreningID); err != nil {
		return err
	}
	return u.foreninger.AddMember(ctx, &model.Foreningsmedlem{
		ForeningID: foreningID,
		UserID:     userID,
		Rolle:      model.RolleMedlem,
		Status:     model.StatusPending,
	})
}

// Approve promotes a pending application. Only approved admins may do
// this.
func (u *ForeningUseCase) Approve(ctx context.Context, adminID, foreningID, applicantID string) error {
	if err := u.requireAdmin(ctx, adminID, foreningID); err != nil {
		return err
	}
	return u.foreninger.SetMemberStatus(ctx, foreningID, applicantID, model.StatusApproved)
}

// Reject removes a pending application. Only approved admins may do this.
func (u *ForeningUseCase) Reject(ctx context.Context, adminID, foreningID, applicantID string) error {
	if err := u.requireAdmin(ctx, adminID, foreningID); err != nil {
		return err
	}
	return u.foreninger.RemoveMember(ctx, foreningID, applicantID)
}

// Members lists a forening's membership rows.
func (u *ForeningUseCase) Members(ctx context.Context, userID, foreningID string) ([]model.Foreningsmedlem, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	return u.foreninger.ListMembers(ctx, foreningID)
}

func (u *ForeningUseCase) requireAdmin(ctx context.Context, userID, foreningID string) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	member, err := u.foreninger.GetMember(ctx, foreningID, userID)
	if err != nil {
		return err
	}
	if !member.IsApprovedAdmin() {
		return model.ErrNotOwner
	}
	return nil
}
