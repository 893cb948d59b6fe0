package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when a write is attempted without a
	// known user identity. It is raised before any network call is made.
	ErrUnauthenticated = errors.New("ikke logget ind")

	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("ikke fundet")

	// ErrNotOwner is returned when a user tries to modify a row owned by
	// someone else.
	ErrNotOwner = errors.New("tilhører en anden bruger")

	// ErrInvalid marks caller-supplied data that fails validation. The
	// concrete validation errors below all wrap it so the HTTP layer can
	// match the whole family at once.
	ErrInvalid = errors.New("ugyldige data")

	// ErrPartialCoordinates is returned when a draft carries only one of
	// latitude/longitude.
	ErrPartialCoordinates = fmt.Errorf("%w: latitude og longitude skal begge angives eller begge udelades", ErrInvalid)

	// ErrUnknownKategori is returned when a draft names a category outside
	// the fixed enumeration.
	ErrUnknownKategori = fmt.Errorf("%w: ukendt kategori", ErrInvalid)
)

// ErrMissingField reports a required draft field left empty.
func ErrMissingField(field string) error {
	return fmt.Errorf("%w: feltet %q skal udfyldes", ErrInvalid, field)
}
