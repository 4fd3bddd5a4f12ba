package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/viewtube/backend/internal/database"
	"github.com/viewtube/backend/internal/models"
)

type VideoRepository struct {
	db *database.DB
}

func NewVideoRepository(db *database.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, channel_id, title, description, video_url, thumbnail_url, uploader, views, likes, dislikes, upload_date, created_at, updated_at`

// Create creates a new video
func (r *VideoRepository) Create(video *models.Video) error {
	query := `
		INSERT INTO videos (id, channel_id, title, description, video_url, thumbnail_url, uploader, views, likes, dislikes, upload_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		video.ID,
		video.ChannelID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.Uploader,
		video.Views,
		pq.Array(idStrings(video.Likes)),
		pq.Array(idStrings(video.Dislikes)),
		video.UploadDate,
		video.CreatedAt,
		video.UpdatedAt,
	).Scan(&video.ID, &video.CreatedAt, &video.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// List returns all videos
func (r *VideoRepository) List() ([]models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY upload_date DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	return scanVideos(rows)
}

// GetByID retrieves a video by ID
func (r *VideoRepository) GetByID(id uuid.UUID) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	video, err := scanVideo(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("video %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return video, nil
}

// ListByChannelIDs returns all videos belonging to any of the channels
func (r *VideoRepository) ListByChannelIDs(channelIDs []uuid.UUID) ([]models.Video, error) {
	if len(channelIDs) == 0 {
		return []models.Video{}, nil
	}

	query := `SELECT ` + videoColumns + ` FROM videos WHERE channel_id = ANY($1) ORDER BY upload_date DESC`

	rows, err := r.db.Query(query, pq.Array(idStrings(channelIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to list videos by channel: %w", err)
	}
	defer rows.Close()

	return scanVideos(rows)
}

// UpdateReactions persists the video's like and dislike sets. The sets are
// written as read-modified by the caller; concurrent toggles on the same
// video are last-writer-wins.
func (r *VideoRepository) UpdateReactions(video *models.Video) error {
	query := `
		UPDATE videos
		SET likes = $1, dislikes = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		query,
		pq.Array(idStrings(video.Likes)),
		pq.Array(idStrings(video.Dislikes)),
		video.ID,
	).Scan(&video.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("video %w", ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update video reactions: %w", err)
	}

	return nil
}

// Delete deletes a video
func (r *VideoRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM videos WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("video %w", ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVideo(row rowScanner) (*models.Video, error) {
	video := &models.Video{}
	var likes, dislikes []string

	err := row.Scan(
		&video.ID,
		&video.ChannelID,
		&video.Title,
		&video.Description,
		&video.VideoURL,
		&video.ThumbnailURL,
		&video.Uploader,
		&video.Views,
		pq.Array(&likes),
		pq.Array(&dislikes),
		&video.UploadDate,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if video.Likes, err = parseIDs(likes); err != nil {
		return nil, fmt.Errorf("failed to parse likes: %w", err)
	}
	if video.Dislikes, err = parseIDs(dislikes); err != nil {
		return nil, fmt.Errorf("failed to parse dislikes: %w", err)
	}

	return video, nil
}

func scanVideos(rows *sql.Rows) ([]models.Video, error) {
	videos := []models.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, *video)
	}

	return videos, rows.Err()
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
