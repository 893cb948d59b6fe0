package service

import (
	"strings"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// FilterCriteria is the ephemeral feed filter state. Only the radius is
// ever persisted (by the feed usecase, not here).
type FilterCriteria struct {
	// Query is matched case-insensitively as a substring of a post's
	// overskrift, omraade and text. Empty matches everything.
	Query string

	// Kategori is either model.AlleKategorier or one exact category.
	Kategori string

	// RadiusKm is the maximum distance from the user within which located
	// posts are shown.
	RadiusKm float64
}

// FilterPosts computes the derived feed view: the subset of posts matching
// all criteria, in the order they were given (newest-first fetch order is
// preserved, never re-sorted). It is a pure function of its inputs.
//
// A post without coordinates, or any post when loc is nil, passes the
// distance criterion unconditionally; missing location data never hides a
// post.
func FilterPosts(posts []model.Post, c FilterCriteria, loc *model.UserLocation) []model.Post {
	search := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]model.Post, 0, len(posts))
	for _, post := range posts {
		if !matchesSearch(&post, search) {
			continue
		}
		if !matchesKategori(&post, c.Kategori) {
			continue
		}
		if loc != nil && post.HasLocation() {
			dist := DistanceInKm(loc.Latitude, loc.Longitude, *post.Latitude, *post.Longitude)
			if dist > c.RadiusKm {
				continue
			}
		}
		out = append(out, post)
	}
	return out
}

func matchesSearch(post *model.Post, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(post.Overskrift), search) ||
		strings.Contains(strings.ToLower(post.Omraade), search) ||
		strings.Contains(strings.ToLower(post.Text), search)
}

func matchesKategori(post *model.Post, kategori string) bool {
	if kategori == "" || kategori == model.AlleKategorier {
		return true
	}
	return post.KategoriValue() == kategori
}
