package preferences

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// keyringService is the service name preferences are filed under in the
// OS keyring.
const keyringService = "dk.muusmann.liguster"

// KeyringStore keeps preferences in the operating system keyring, so they
// survive reinstalls and never land in a world-readable file.
type KeyringStore struct{}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (s *KeyringStore) Get(key string) (string, error) {
	value, err := keyring.Get(keyringService, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", repository.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s from keyring: %w", key, err)
	}
	return value, nil
}

func (s *KeyringStore) Set(key, value string) error {
	if err := keyring.Set(keyringService, key, value); err != nil {
		return fmt.Errorf("write %s to keyring: %w", key, err)
	}
	return nil
}
