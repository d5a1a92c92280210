package delivery_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crockpot-backend/internal/auth/delivery"
	"crockpot-backend/internal/auth/token"
	"crockpot-backend/internal/auth/usecase"
	"crockpot-backend/pkg/apperrors"
)

func handlerTestRouter(repo *fakeUserRepo) (*gin.Engine, *token.Codec) {
	gin.SetMode(gin.TestMode)
	codec := newTestCodec()
	authUsecase := usecase.NewAuthUsecase(repo)
	handler := delivery.NewAuthHandler(authUsecase, codec, 7*24*time.Hour, false)

	r := gin.New()
	r.Use(apperrors.ErrorHandler(zap.NewNop(), false))
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/logout", handler.Logout)

	return r, codec
}

func postJSON(r *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterCreatesUserAndIssuesTokens(t *testing.T) {
	repo := newFakeUserRepo()
	r, codec := handlerTestRouter(repo)

	w := postJSON(r, "/auth/register", `{"email":"a@b.com","password":"password123","name":"A"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["_id"])
	require.Equal(t, "a@b.com", body["email"])
	require.Equal(t, "A", body["name"])
	require.NotContains(t, body, "password")

	accessToken, ok := body["accessToken"].(string)
	require.True(t, ok)
	claims, err := codec.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, body["_id"], claims.UserID)

	cookie := findCookie(t, w, "refreshToken")
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	_, err = codec.VerifyRefreshToken(cookie.Value)
	require.NoError(t, err)

	// The stored record carries a bcrypt hash, not the plain password.
	stored, err := repo.FindByEmail("a@b.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEmpty(t, stored.Password)
	require.NotEqual(t, "password123", stored.Password)
	require.Equal(t, "local", stored.Provider)
	require.Equal(t, "user", stored.Role)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	r, _ := handlerTestRouter(repo)

	payload := `{"email":"a@b.com","password":"password123","name":"A"}`
	w := postJSON(r, "/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/auth/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "User already exists", decodeError(t, w).Message)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := handlerTestRouter(newFakeUserRepo())

	for _, payload := range []string{
		`{}`,
		`{"email":"not-an-email","password":"password123","name":"A"}`,
		`{"email":"a@b.com","password":"short","name":"A"}`,
		`{"email":"a@b.com","password":"password123"}`,
	} {
		w := postJSON(r, "/auth/register", payload)
		require.Equal(t, http.StatusBadRequest, w.Code, "payload %s", payload)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	r, _ := handlerTestRouter(repo)

	w := postJSON(r, "/auth/register", `{"email":"a@b.com","password":"password123","name":"A"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/auth/login", `{"email":"a@b.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "a@b.com", body["email"])
	require.NotEmpty(t, body["accessToken"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	r, _ := handlerTestRouter(repo)

	w := postJSON(r, "/auth/register", `{"email":"a@b.com","password":"password123","name":"A"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong password and unknown email are indistinguishable.
	for _, payload := range []string{
		`{"email":"a@b.com","password":"wrong-password"}`,
		`{"email":"nobody@b.com","password":"password123"}`,
	} {
		w = postJSON(r, "/auth/login", payload)
		require.Equal(t, http.StatusUnauthorized, w.Code, "payload %s", payload)
		require.Equal(t, "Incorrect email or password", decodeError(t, w).Message)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := handlerTestRouter(newFakeUserRepo())

	w := postJSON(r, "/auth/logout", ``)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())

	cookie := findCookie(t, w, "refreshToken")
	require.Empty(t, cookie.Value)
}
