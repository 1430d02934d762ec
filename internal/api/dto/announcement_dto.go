package dto

// CreateAnnouncementRequest payload for a new announcement.
type CreateAnnouncementRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Type     string   `json:"type"`
	Priority string   `json:"priority"`
	Tags     []string `json:"tags"`
	Pinned   bool     `json:"pinned"`
}

// UpdateAnnouncementRequest payload for partial announcement changes.
type UpdateAnnouncementRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Type     *string  `json:"type"`
	Priority *string  `json:"priority"`
	Tags     []string `json:"tags"`
	Pinned   *bool    `json:"pinned"`
}
