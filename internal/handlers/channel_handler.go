package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viewtube/backend/internal/models"
	"github.com/viewtube/backend/internal/repository"
)

type ChannelHandler struct {
	channelRepo *repository.ChannelRepository
	userRepo    *repository.UserRepository
}

func NewChannelHandler(channelRepo *repository.ChannelRepository, userRepo *repository.UserRepository) *ChannelHandler {
	return &ChannelHandler{
		channelRepo: channelRepo,
		userRepo:    userRepo,
	}
}

// CreateChannel creates a channel for the given owner. The owner edge lives
// on the channel row, so the user record needs no separate update.
func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Channel Name and Owner ID are required")
		return
	}

	if req.ChannelName == "" || req.OwnerID == "" {
		ErrorResponse(c, http.StatusBadRequest, "Channel Name and Owner ID are required")
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Channel Name and Owner ID are required")
		return
	}

	if _, err := h.userRepo.GetByID(ownerID); err != nil {
		ErrorResponse(c, http.StatusNotFound, "User not found")
		return
	}

	channel := &models.Channel{
		ID:            uuid.New(),
		ChannelName:   req.ChannelName,
		OwnerID:       ownerID,
		Description:   req.Description,
		ChannelBanner: req.ChannelBanner,
		Subscribers:   0,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.channelRepo.Create(channel); err != nil {
		InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, channel)
}

// CheckUserChannel reports whether the user owns at least one channel
func (h *ChannelHandler) CheckUserChannel(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"hasChannel": false})
		return
	}

	exists, err := h.channelRepo.ExistsByOwner(userID)
	if err != nil {
		InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hasChannel": exists})
}
