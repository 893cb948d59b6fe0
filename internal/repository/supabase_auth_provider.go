package repository

import (
	"context"
	"fmt"

	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

type contextKey string

const accessTokenKey contextKey = "liguster-access-token"

// ContextWithToken attaches the caller's GoTrue access token to the
// context. The HTTP middleware sets it from the Authorization header; the
// terminal client sets it once from the environment.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// TokenFromContext returns the attached access token, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}

// SupabaseAuthProvider resolves the current user through GoTrue using the
// access token carried on the context. No token means unauthenticated
// browsing, which is a valid state rather than an error.
type SupabaseAuthProvider struct {
	client *database.SupabaseClient
}

func NewSupabaseAuthProvider(client *database.SupabaseClient) repository.AuthProvider {
	return &SupabaseAuthProvider{client: client}
}

func (p *SupabaseAuthProvider) CurrentUserID(ctx context.Context) (string, error) {
	token := TokenFromContext(ctx)
	if token == "" {
		return "", nil
	}

	user, err := p.client.GetClient().Auth.WithToken(token).GetUser()
	if err != nil {
		return "", fmt.Errorf("resolve user from token: %w", err)
	}
	return user.ID.String(), nil
}
