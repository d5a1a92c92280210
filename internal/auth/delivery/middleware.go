package delivery

import (
	"net/http"
	"strings"
	"time"

	authdomain "crockpot-backend/internal/auth/domain"
	authdto "crockpot-backend/internal/auth/dto"
	"crockpot-backend/internal/auth/repository"
	"crockpot-backend/internal/auth/token"
	"crockpot-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// Authenticate resolves the Authorization bearer token to a persisted
// user record and attaches it to the request context. Every failure
// branch is terminal: it hands control to the error handler and does
// no further work.
func Authenticate(codec *token.Codec, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := extractBearerToken(c.GetHeader("Authorization"))
		if bearer == "" {
			abortWithError(c, apperrors.NewUnauthorized("No token provided", "TOKEN_MISSING"))
			return
		}

		claims, err := codec.VerifyAccessToken(bearer)
		if err != nil {
			abortWithError(c, apperrors.NewUnauthorized("Invalid or expired access token", "INVALID_ACCESS_TOKEN"))
			return
		}

		if claims.UserID == "" {
			abortWithError(c, apperrors.NewUnauthorized("Invalid token format", "INVALID_TOKEN_FORMAT"))
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			abortWithError(c, apperrors.NewUnauthorized("Error retrieving user data", ""))
			return
		}

		if user == nil {
			abortWithError(c, apperrors.NewUnauthorized("User not found", "USER_NOT_FOUND"))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin guards admin-only routes. It assumes Authenticate has
// already attached the user.
func RequireAdmin(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok || !user.IsAdmin() {
		abortWithError(c, apperrors.NewForbidden("Admin access required"))
		return
	}
	c.Next()
}

// RefreshTokens redeems the refresh-token cookie for a new token pair.
// The old cookie is replaced by the new refresh token (rotation); the
// new access token is returned in the body.
func RefreshTokens(codec *token.Codec, refreshTTL time.Duration, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie(refreshTokenCookieName)
		if err != nil || refreshToken == "" {
			abortWithError(c, apperrors.NewUnauthorized("No refresh token provided", "REFRESH_TOKEN_MISSING"))
			return
		}

		claims, err := codec.VerifyRefreshToken(refreshToken)
		if err != nil {
			// A present-but-rejected credential is a 403, not a 401;
			// clients rely on the distinction.
			clearRefreshTokenCookie(c, production)
			abortWithError(c, apperrors.NewForbidden("Invalid or expired refresh token"))
			return
		}

		subject := &authdomain.User{ID: claims.UserID, Email: claims.Email}

		newAccessToken, err := codec.IssueAccessToken(subject)
		if err != nil {
			abortWithError(c, apperrors.NewInternal(err.Error()))
			return
		}

		newRefreshToken, err := codec.IssueRefreshToken(subject)
		if err != nil {
			abortWithError(c, apperrors.NewInternal(err.Error()))
			return
		}

		setRefreshTokenCookie(c, newRefreshToken, refreshTTL, production)
		c.JSON(http.StatusOK, authdto.RefreshResponse{AccessToken: newAccessToken})
	}
}

// CurrentUser returns the user attached by Authenticate.
func CurrentUser(c *gin.Context) (*authdomain.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*authdomain.User)
	return user, ok
}

func extractBearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
