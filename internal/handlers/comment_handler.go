package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viewtube/backend/internal/models"
	"github.com/viewtube/backend/internal/repository"
)

type CommentHandler struct {
	commentRepo *repository.CommentRepository
}

func NewCommentHandler(commentRepo *repository.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepo: commentRepo}
}

// FetchComments returns all comments on a video, newest first
func (h *CommentHandler) FetchComments(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	comments, err := h.commentRepo.ListByVideo(videoID)
	if err != nil {
		InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// FetchComment returns a single comment by id
func (h *CommentHandler) FetchComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	comment, err := h.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Comment with the Id does not Exist")
		} else {
			InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// AddComment attaches a comment to a video
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.VideoID == "" || req.UserID == "" || req.Text == "" {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	videoID, err := uuid.Parse(req.VideoID)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	username := req.Username
	if username == "" {
		username = "User"
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		UserID:    userID,
		Username:  username,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := h.commentRepo.Create(comment); err != nil {
		InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment Added"})
}

// UpdateComment replaces a comment's text. Blank replacements are rejected
// before the store is touched; createdAt is never modified.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	text := req.TrimmedText()
	if text == "" {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	comment, err := h.commentRepo.UpdateText(commentID, text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Comment with the Id does not exist")
		} else {
			InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment Updated", "comment": comment})
}

// DeleteComment removes a comment by id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.commentRepo.Delete(commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Comment with the Id does not Exist")
		} else {
			InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment Deleted"})
}
