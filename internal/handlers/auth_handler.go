package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viewtube/backend/internal/auth"
	"github.com/viewtube/backend/internal/models"
	"github.com/viewtube/backend/internal/repository"
)

const contextUser = "authenticated_user"

type AuthHandler struct {
	userRepo   *repository.UserRepository
	jwtService *auth.JWTService
}

func NewAuthHandler(userRepo *repository.UserRepository, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup registers a new user. One account per email: a duplicate signup
// is rejected before any record is written.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	exists, err := h.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		InternalError(c)
		return
	}
	if exists {
		ErrorResponse(c, http.StatusBadRequest, "User Already Registered, Please Login")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		InternalError(c)
		return
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		AvatarURL:    req.Avatar,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.userRepo.Create(user); err != nil {
		InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User Created"})
}

// ValidateLogin is the first half of the login chain. It resolves the user
// by email, verifies the password, and stashes the user on the context for
// Login. Each failure mode keeps its own 401 message.
func (h *AuthHandler) ValidateLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		c.Abort()
		return
	}

	user, err := h.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusUnauthorized, "User Does not Exist. Please Register")
		} else {
			InternalError(c)
		}
		c.Abort()
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		ErrorResponse(c, http.StatusUnauthorized, "Password is Incorrect")
		c.Abort()
		return
	}

	c.Set(contextUser, user)
	c.Next()
}

// Login issues a bearer token for the user validated by ValidateLogin
func (h *AuthHandler) Login(c *gin.Context) {
	value, exists := c.Get(contextUser)
	if !exists {
		InternalError(c)
		return
	}
	user := value.(*models.User)

	token, err := h.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		InternalError(c)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Message: "User Logged In",
		Token:   token,
	})
}

// GetUser resolves the current user from the bearer token. This endpoint
// verifies in-handler and answers 401 for every token failure, unlike the
// stricter middleware paths.
func (h *AuthHandler) GetUser(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		ErrorResponse(c, http.StatusUnauthorized, "No token provided")
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		ErrorResponse(c, http.StatusUnauthorized, "Token not provided")
		return
	}

	claims, err := h.jwtService.ValidateToken(parts[1])
	if err != nil {
		ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound, "User not found")
		} else {
			InternalError(c)
		}
		return
	}

	// PasswordHash is excluded from serialization by the model.
	c.JSON(http.StatusOK, user)
}
