package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/viewtube/backend/internal/database"
	"github.com/viewtube/backend/internal/models"
)

type ChannelRepository struct {
	db *database.DB
}

func NewChannelRepository(db *database.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func (r *ChannelRepository) Create(channel *models.Channel) error {
	query := `
	INSERT INTO channels (id, channel_name, owner_id, description, banner_url, subscribers, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(query,
		channel.ID,
		channel.ChannelName,
		channel.OwnerID,
		channel.Description,
		channel.ChannelBanner,
		channel.Subscribers,
		channel.CreatedAt,
		channel.UpdatedAt,
	).Scan(&channel.ID, &channel.CreatedAt, &channel.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}
	return nil
}

func (r *ChannelRepository) GetByID(id uuid.UUID) (*models.Channel, error) {
	query := `
	SELECT id, channel_name, owner_id, description, banner_url, subscribers, created_at, updated_at
        FROM channels WHERE id = $1
    `
	ch := &models.Channel{}
	err := r.db.QueryRow(query, id).Scan(
		&ch.ID,
		&ch.ChannelName,
		&ch.OwnerID,
		&ch.Description,
		&ch.ChannelBanner,
		&ch.Subscribers,
		&ch.CreatedAt,
		&ch.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("channel %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// FirstByOwner returns the oldest channel owned by the user. Callers that
// pair a video list with "the" channel rely on this picking a single one
// even for multi-channel owners.
func (r *ChannelRepository) FirstByOwner(ownerID uuid.UUID) (*models.Channel, error) {
	query := `
	SELECT id, channel_name, owner_id, description, banner_url, subscribers, created_at, updated_at
        FROM channels WHERE owner_id = $1 ORDER BY created_at LIMIT 1
    `
	ch := &models.Channel{}
	err := r.db.QueryRow(query, ownerID).Scan(
		&ch.ID,
		&ch.ChannelName,
		&ch.OwnerID,
		&ch.Description,
		&ch.ChannelBanner,
		&ch.Subscribers,
		&ch.CreatedAt,
		&ch.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("channel %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// ExistsByOwner checks if the user owns at least one channel
func (r *ChannelRepository) ExistsByOwner(ownerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM channels WHERE owner_id = $1)`
	var exists bool
	err := r.db.QueryRow(query, ownerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check channel owner: %w", err)
	}
	return exists, nil
}
