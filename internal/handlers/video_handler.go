package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viewtube/backend/internal/cache"
	"github.com/viewtube/backend/internal/middleware"
	"github.com/viewtube/backend/internal/models"
	"github.com/viewtube/backend/internal/repository"
)

type VideoHandler struct {
	videoRepo   *repository.VideoRepository
	userRepo    *repository.UserRepository
	channelRepo *repository.ChannelRepository
	redis       *cache.RedisClient
}

func NewVideoHandler(
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
	channelRepo *repository.ChannelRepository,
	redis *cache.RedisClient,
) *VideoHandler {
	return &VideoHandler{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		channelRepo: channelRepo,
		redis:       redis,
	}
}

// UploadVideo registers a video under an existing channel
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	var req models.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.ChannelID == "" || req.Title == "" || req.VideoURL == "" || req.ThumbnailURL == "" || req.Uploader == "" {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	channelID, err := uuid.Parse(req.ChannelID)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if _, err := h.channelRepo.GetByID(channelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Channel not found")
		} else {
			InternalError(c)
		}
		return
	}

	now := time.Now()
	video := &models.Video{
		ID:           uuid.New(),
		ChannelID:    channelID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Uploader:     req.Uploader,
		Likes:        []uuid.UUID{},
		Dislikes:     []uuid.UUID{},
		UploadDate:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.videoRepo.Create(video); err != nil {
		InternalError(c)
		return
	}

	if h.redis != nil {
		_ = h.redis.InvalidateVideoList()
	}

	c.JSON(http.StatusCreated, video)
}

// ListVideos returns every video on the platform
func (h *VideoHandler) ListVideos(c *gin.Context) {
	if h.redis != nil {
		if cached, err := h.redis.GetCachedVideoList(); err == nil && cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	videos, err := h.videoRepo.List()
	if err != nil {
		InternalError(c)
		return
	}

	if h.redis != nil {
		_ = h.redis.CacheVideoList(videos)
	}

	c.JSON(http.StatusOK, videos)
}

// GetVideosByUser returns all videos across the user's channels, paired
// with the user's first channel. Owners of several channels still get a
// single channel document back.
func (h *VideoHandler) GetVideosByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		ErrorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	if _, err := h.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "User not found")
		} else {
			InternalError(c)
		}
		return
	}

	channelIDs, err := h.userRepo.ChannelIDs(userID)
	if err != nil {
		InternalError(c)
		return
	}

	videos, err := h.videoRepo.ListByChannelIDs(channelIDs)
	if err != nil {
		InternalError(c)
		return
	}

	var channel *models.Channel
	if ch, err := h.channelRepo.FirstByOwner(userID); err == nil {
		channel = ch
	} else if !errors.Is(err, repository.ErrNotFound) {
		InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "channel": channel})
}

// DeleteVideo removes a video by id
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		ErrorResponse(c, http.StatusNotFound, "Video not Found")
		return
	}

	if err := h.videoRepo.Delete(videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Video not Found")
		} else {
			InternalError(c)
		}
		return
	}

	if h.redis != nil {
		_ = h.redis.InvalidateVideoList()
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Video Deleted"})
}

// Like toggles the caller's like on a video
func (h *VideoHandler) Like(c *gin.Context) {
	h.toggleReaction(c, func(v *models.Video, userID uuid.UUID) {
		v.ToggleLike(userID)
	})
}

// Dislike toggles the caller's dislike on a video
func (h *VideoHandler) Dislike(c *gin.Context) {
	h.toggleReaction(c, func(v *models.Video, userID uuid.UUID) {
		v.ToggleDislike(userID)
	})
}

// toggleReaction runs the shared read-modify-write cycle for like/dislike.
// The write is last-writer-wins against concurrent toggles on the same
// video; the store serializes nothing beyond the single row update.
func (h *VideoHandler) toggleReaction(c *gin.Context, toggle func(*models.Video, uuid.UUID)) {
	userID, _ := c.Get(middleware.ContextUserID)
	uid := userID.(uuid.UUID)

	videoID, err := uuid.Parse(c.Param("videoId"))
	if err != nil {
		ErrorResponse(c, http.StatusNotFound, "Video not Found")
		return
	}

	video, err := h.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Video not Found")
		} else {
			InternalError(c)
		}
		return
	}

	toggle(video, uid)

	if err := h.videoRepo.UpdateReactions(video); err != nil {
		InternalError(c)
		return
	}

	if h.redis != nil {
		_ = h.redis.InvalidateVideoList()
	}

	c.JSON(http.StatusOK, video)
}
