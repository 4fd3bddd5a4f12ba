package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/viewtube/backend/internal/database"
	"github.com/viewtube/backend/internal/models"
)

type CommentRepository struct {
	db *database.DB
}

func NewCommentRepository(db *database.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, video_id, user_id, username, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		query,
		comment.ID,
		comment.VideoID,
		comment.UserID,
		comment.Username,
		comment.Text,
		comment.CreatedAt,
	).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	query := `
		SELECT id, video_id, user_id, username, text, created_at
		FROM comments
		WHERE id = $1
	`

	comment := &models.Comment{}
	err := r.db.QueryRow(query, id).Scan(
		&comment.ID,
		&comment.VideoID,
		&comment.UserID,
		&comment.Username,
		&comment.Text,
		&comment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("comment %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListByVideo returns all comments for a video, newest first
func (r *CommentRepository) ListByVideo(videoID uuid.UUID) ([]models.Comment, error) {
	query := `
		SELECT id, video_id, user_id, username, text, created_at
		FROM comments
		WHERE video_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.VideoID,
			&comment.UserID,
			&comment.Username,
			&comment.Text,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

// UpdateText replaces the comment's text and returns the updated comment.
// The creation timestamp is never touched.
func (r *CommentRepository) UpdateText(id uuid.UUID, text string) (*models.Comment, error) {
	query := `
		UPDATE comments
		SET text = $1
		WHERE id = $2
		RETURNING id, video_id, user_id, username, text, created_at
	`

	comment := &models.Comment{}
	err := r.db.QueryRow(query, text, id).Scan(
		&comment.ID,
		&comment.VideoID,
		&comment.UserID,
		&comment.Username,
		&comment.Text,
		&comment.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("comment %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// Delete deletes a comment
func (r *CommentRepository) Delete(id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("comment %w", ErrNotFound)
	}

	return nil
}
