package model

// User is a profile row in the users table. Auth itself lives in GoTrue;
// this row only carries the app-visible profile fields.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}
