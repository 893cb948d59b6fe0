package model

// Kategorier is the fixed category enumeration shown in the app. The first
// entry is the "all categories" sentinel used by the feed filter.
var Kategorier = []string{
	"Alle kategorier",
	"Værktøj",
	"Arbejde tilbydes",
	"Affald",
	"Mindre ting",
	"Større ting",
	"Hjælp søges",
	"Hjælp tilbydes",
	"Byttes",
}

// AlleKategorier is the sentinel meaning "do not filter by category".
const AlleKategorier = "Alle kategorier"

// IsValidKategori reports whether v is one of the real categories. The
// sentinel is not a storable category.
func IsValidKategori(v string) bool {
	for _, k := range Kategorier[1:] {
		if k == v {
			return true
		}
	}
	return false
}
