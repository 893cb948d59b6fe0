package repository

import (
	"context"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// ForeningRepository is the persistence contract for associations and
// their memberships.
type ForeningRepository interface {
	// List returns foreninger, optionally narrowed by a free-text search
	// over navn and sted. Empty search returns everything.
	List(ctx context.Context, search string) ([]model.Forening, error)

	// GetByID returns a single forening or model.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Forening, error)

	// Create stores a new forening and returns its server-assigned id.
	Create(ctx context.Context, f *model.Forening) (string, error)

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, m *model.Foreningsmedlem) error

	// SetMemberStatus updates the status of an existing membership.
	SetMemberStatus(ctx context.Context, foreningID, userID, status string) error

	// RemoveMember deletes a membership row.
	RemoveMember(ctx context.Context, foreningID, userID string) error

	// ListMembers returns all membership rows of a forening.
	ListMembers(ctx context.Context, foreningID string) ([]model.Foreningsmedlem, error)

	// GetMember returns one membership row or model.ErrNotFound.
	GetMember(ctx context.Context, foreningID, userID string) (*model.Foreningsmedlem, error)
}
