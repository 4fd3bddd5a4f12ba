package models

import (
	"time"

	"github.com/google/uuid"
)

type Channel struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ChannelName   string    `json:"channelName" db:"channel_name"`
	OwnerID       uuid.UUID `json:"owner" db:"owner_id"`
	Description   string    `json:"description" db:"description"`
	ChannelBanner string    `json:"channelBanner" db:"banner_url"`
	Subscribers   int       `json:"subscribers" db:"subscribers"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CreateChannelRequest carries the channel creation payload. Name and owner
// are checked by the handler so a missing field maps to the documented 400,
// not a binding error.
type CreateChannelRequest struct {
	ChannelName   string `json:"channelName"`
	OwnerID       string `json:"ownerId"`
	Description   string `json:"description"`
	ChannelBanner string `json:"channelBanner"`
}
