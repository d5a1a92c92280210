package delivery

import (
	"net/http"
	"time"

	authdomain "crockpot-backend/internal/auth/domain"
	authdto "crockpot-backend/internal/auth/dto"
	"crockpot-backend/internal/auth/token"
	"crockpot-backend/internal/auth/usecase"
	"crockpot-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const refreshTokenCookieName = "refreshToken"

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	codec       *token.Codec
	refreshTTL  time.Duration
	production  bool
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, codec *token.Codec, refreshTTL time.Duration, production bool) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		codec:       codec,
		refreshTTL:  refreshTTL,
		production:  production,
	}
}

// Register creates a local account and signs the user in.
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.sendTokens(c, user, http.StatusCreated)
}

// Login authenticates a local account.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Login(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.sendTokens(c, user, http.StatusOK)
}

// GoogleSignIn verifies a Google ID token and signs the user in,
// creating the account on first sight.
// POST /auth/google
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req authdto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.GoogleSignIn(req.Token)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.sendTokens(c, user, http.StatusOK)
}

// Logout clears the refresh-token cookie. There is no server-side
// token state to revoke.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	clearRefreshTokenCookie(c, h.production)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// sendTokens issues a token pair for the user: the refresh token goes
// into the HTTP-only cookie, the access token into the body next to
// the user record.
func (h *AuthHandler) sendTokens(c *gin.Context, user *authdomain.User, status int) {
	accessToken, err := h.codec.IssueAccessToken(user)
	if err != nil {
		abortWithError(c, apperrors.NewInternal(err.Error()))
		return
	}

	refreshToken, err := h.codec.IssueRefreshToken(user)
	if err != nil {
		abortWithError(c, apperrors.NewInternal(err.Error()))
		return
	}

	setRefreshTokenCookie(c, refreshToken, h.refreshTTL, h.production)
	c.JSON(status, authdto.AuthResponse{User: user, AccessToken: accessToken})
}

func setRefreshTokenCookie(c *gin.Context, value string, ttl time.Duration, production bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookieName, value, int(ttl.Seconds()), "/", "", production, true)
}

func clearRefreshTokenCookie(c *gin.Context, production bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookieName, "", -1, "/", "", production, true)
}
