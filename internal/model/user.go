package model

// UserProfile is the local cache of platform profile data (fed by the
// user databus), used to decorate conversation history responses.
type UserProfile struct {
	ID        string `db:"id"`
	Nickname  string `db:"nickname"`
	AvatarURL string `db:"avatar_url"`
}
