package models

import "time"

// CreativeStatus tracks a creative through the review pipeline.
type CreativeStatus string

const (
	CreativeStatusDraft     CreativeStatus = "draft"
	CreativeStatusSubmitted CreativeStatus = "submitted"
	CreativeStatusApproved  CreativeStatus = "approved"
)

// Valid reports whether s is one of the known statuses.
func (s CreativeStatus) Valid() bool {
	return s == CreativeStatusDraft || s == CreativeStatusSubmitted || s == CreativeStatusApproved
}

// Creative is locally tracked metadata about an uploaded ad creative.
// The binary asset itself lives with the upload collaborator.
type Creative struct {
	ID        string
	UserID    string
	Title     string
	Format    string
	Status    CreativeStatus
	CreatedAt time.Time
}
