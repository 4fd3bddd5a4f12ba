package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment references its video by id only; deleting a video does not
// cascade into its comments.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	VideoID   uuid.UUID `json:"videoId" db:"video_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateCommentRequest fields are checked by the handler so missing values
// yield the documented "Missing required fields" 400.
type CreateCommentRequest struct {
	VideoID  string `json:"videoId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

type UpdateCommentRequest struct {
	UpdatedText string `json:"updatedText"`
}

// TrimmedText returns the replacement text with surrounding whitespace
// stripped; an empty result means the update is invalid.
func (r *UpdateCommentRequest) TrimmedText() string {
	return strings.TrimSpace(r.UpdatedText)
}
