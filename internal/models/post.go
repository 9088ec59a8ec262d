package models

import "time"

// Post is a stored post. Width and height are copied from the referenced
// photo at creation time; photos are immutable so the copy cannot go stale.
type Post struct {
	ID          string    `json:"id"`
	PhotoHash   string    `json:"photo_hash"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Place       string    `json:"place,omitempty"`
	Author      string    `json:"author"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostRequest is the client-supplied part of a post, shared by create and
// update. On update the photo hash may be omitted; supplying a different one
// is rejected since the photo reference is locked after creation.
type PostRequest struct {
	PhotoHash   string `json:"photo_hash"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Place       string `json:"place"`
}

func (r *PostRequest) Validate() error {
	if r.PhotoHash == "" {
		return &ValidationError{Field: "photo_hash", Reason: "required"}
	}
	return nil
}
