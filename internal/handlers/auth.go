package handlers

import (
	"errors"
	"net/http"
	"strings"

	"Shop/internal/auth"
	dom "Shop/internal/domain"
	"Shop/internal/dto"
	"Shop/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, register and logout. Login and register answer
// with an opaque bearer token for the Authorization header.
type AuthHandler struct {
	tokens  *auth.Store
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.Store, userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{tokens: tokens, userSvc: userSvc}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.userSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid username or password"})
			return
		}
		domainError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, user)
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  dto.TokenResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "username and password required"})
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"detail": "username already taken"})
			return
		}
		domainError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, user)
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		_ = h.tokens.Revoke(c.Request.Context(), strings.TrimSpace(token))
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user dom.User) {
	token, err := h.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(status, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.UserResponse{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}
