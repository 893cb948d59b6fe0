package model

import "time"

// Member roles and statuses in foreningsmedlemmer.
const (
	RolleAdmin  = "admin"
	RolleMedlem = "medlem"

	StatusApproved = "approved"
	StatusPending  = "pending"
)

// Forening is a neighborhood association.
type Forening struct {
	ID          string    `json:"id"`
	Navn        string    `json:"navn"`
	Sted        string    `json:"sted"`
	Beskrivelse string    `json:"beskrivelse"`
	OprettetAf  string    `json:"oprettet_af"`
	CreatedAt   time.Time `json:"created_at"`
}

// Foreningsmedlem is a membership row. The creator of a forening is
// inserted as an approved admin; everyone else starts as pending medlem.
type Foreningsmedlem struct {
	ForeningID string `json:"forening_id"`
	UserID     string `json:"user_id"`
	Rolle      string `json:"rolle"`
	Status     string `json:"status"`
}

// IsApprovedAdmin reports whether the member may manage applications.
func (m *Foreningsmedlem) IsApprovedAdmin() bool {
	return m.Rolle == RolleAdmin && m.Status == StatusApproved
}
