package model

import (
	"strings"
	"time"
)

// Post is a single neighborhood listing ("opslag"). Column names follow the
// Danish schema of the posts table.
type Post struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Overskrift string    `json:"overskrift"`
	Omraade    string    `json:"omraade"`
	Text       string    `json:"text"`
	ImageURL   string    `json:"image_url"`
	UserID     string    `json:"user_id"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Kategori   *string   `json:"kategori"`
}

// HasLocation reports whether the post carries a usable coordinate pair.
// A partial pair (only one of latitude/longitude set) counts as no location.
func (p *Post) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// KategoriValue returns the post's category or the empty string.
func (p *Post) KategoriValue() string {
	if p.Kategori == nil {
		return ""
	}
	return *p.Kategori
}

// PostDraft is the user-supplied content of a new or edited post. ID and
// UserID are never taken from the draft; the usecase forces the current
// user's identity on insert.
type PostDraft struct {
	Overskrift string   `json:"overskrift"`
	Omraade    string   `json:"omraade"`
	Text       string   `json:"text"`
	ImageURL   string   `json:"image_url,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Kategori   *string  `json:"kategori,omitempty"`
}

// Validate checks the minimal required fields and the coordinate pairing
// rule. A draft with only one coordinate set is rejected rather than
// silently treated as unlocated.
func (d *PostDraft) Validate() error {
	if strings.TrimSpace(d.Overskrift) == "" {
		return ErrMissingField("overskrift")
	}
	if strings.TrimSpace(d.Omraade) == "" {
		return ErrMissingField("omraade")
	}
	if strings.TrimSpace(d.Text) == "" {
		return ErrMissingField("text")
	}
	if (d.Latitude == nil) != (d.Longitude == nil) {
		return ErrPartialCoordinates
	}
	if d.Kategori != nil && !IsValidKategori(*d.Kategori) {
		return ErrUnknownKategori
	}
	return nil
}
