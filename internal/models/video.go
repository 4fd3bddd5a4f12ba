package models

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	ChannelID    uuid.UUID   `json:"channelId" db:"channel_id"`
	Title        string      `json:"title" db:"title"`
	Description  string      `json:"description" db:"description"`
	VideoURL     string      `json:"videoUrl" db:"video_url"`
	ThumbnailURL string      `json:"thumbnailUrl" db:"thumbnail_url"`
	Uploader     string      `json:"uploader" db:"uploader"`
	Views        int         `json:"views" db:"views"`
	Likes        []uuid.UUID `json:"likes" db:"likes"`
	Dislikes     []uuid.UUID `json:"dislikes" db:"dislikes"`
	UploadDate   time.Time   `json:"uploadDate" db:"upload_date"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// CreateVideoRequest carries the upload payload; required fields are
// checked by the handler.
type CreateVideoRequest struct {
	ChannelID    string `json:"channelId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Uploader     string `json:"uploader"`
}

// ToggleLike flips the user's membership in the like set. A previous
// dislike is dropped first, so the user never sits in both sets.
// Returns true when the video ends up liked by the user.
func (v *Video) ToggleLike(userID uuid.UUID) bool {
	v.Dislikes = removeID(v.Dislikes, userID)

	if containsID(v.Likes, userID) {
		v.Likes = removeID(v.Likes, userID)
		return false
	}

	v.Likes = append(v.Likes, userID)
	return true
}

// ToggleDislike is the mirror of ToggleLike for the dislike set
func (v *Video) ToggleDislike(userID uuid.UUID) bool {
	v.Likes = removeID(v.Likes, userID)

	if containsID(v.Dislikes, userID) {
		v.Dislikes = removeID(v.Dislikes, userID)
		return false
	}

	v.Dislikes = append(v.Dislikes, userID)
	return true
}

// LikedBy reports whether the user is in the like set
func (v *Video) LikedBy(userID uuid.UUID) bool {
	return containsID(v.Likes, userID)
}

// DislikedBy reports whether the user is in the dislike set
func (v *Video) DislikedBy(userID uuid.UUID) bool {
	return containsID(v.Dislikes, userID)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
