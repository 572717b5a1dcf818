package models

// Album groups records many-to-many; membership is mutated only through
// explicit add/remove calls.
type Album struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageCount  int    `json:"image_count"`
	CoverImage  string `json:"cover_image"`
	CreatedAt   string `json:"created_at"`
}

// User is the authenticated account as returned by the server. The client
// only displays it; nothing else is derived from it.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}
