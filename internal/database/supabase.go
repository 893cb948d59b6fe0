package database

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient wraps the shared Supabase SDK client. It is created once
// at startup and handed to the repositories; nothing imports a global.
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient creates a client against the given project.
func NewSupabaseClient(url, anonKey string) (*SupabaseClient, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase url is empty")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("supabase anon key is empty")
	}

	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("initialize supabase client: %w", err)
	}

	return &SupabaseClient{Client: client}, nil
}

// GetClient returns the underlying SDK client.
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck verifies the client exists. PostgREST has no cheap ping, so
// the first real query is the actual connectivity test.
func (sc *SupabaseClient) HealthCheck() error {
	if sc.Client == nil {
		return fmt.Errorf("supabase client is not initialized")
	}
	return nil
}
