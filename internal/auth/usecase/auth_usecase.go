package usecase

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	authdomain "crockpot-backend/internal/auth/domain"
	authdto "crockpot-backend/internal/auth/dto"
	"crockpot-backend/internal/auth/repository"
	"crockpot-backend/pkg/apperrors"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, apperrors.NewConflict("User already exists")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     authdomain.RoleUser,
		Provider: authdomain.ProviderLocal,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Externally-authenticated accounts have no password hash; they get
	// the same rejection as a wrong password.
	if user == nil || user.Password == "" || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.NewUnauthorized("Incorrect email or password", "")
	}

	return user, nil
}

// GoogleTokenInfo represents the response from Google's tokeninfo endpoint
type GoogleTokenInfo struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified string `json:"email_verified"` // Google returns this as string "true" or "false"
	Sub           string `json:"sub"`
}

func (u *authUsecase) GoogleSignIn(idToken string) (*authdomain.User, error) {
	url := fmt.Sprintf("https://oauth2.googleapis.com/tokeninfo?id_token=%s", idToken)

	resp, err := http.Get(url)
	if err != nil {
		return nil, apperrors.NewServiceUnavailable("Failed to verify Google token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, apperrors.NewUnauthorized("Authentication failed", "")
	}

	var tokenInfo GoogleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		return nil, apperrors.NewUnauthorized("Authentication failed", "")
	}

	if tokenInfo.EmailVerified != "true" {
		return nil, apperrors.NewUnauthorized("Google email is not verified", "")
	}

	user, err := u.userRepo.FindByEmail(tokenInfo.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &authdomain.User{
			Email:    tokenInfo.Email,
			Name:     tokenInfo.Name,
			Role:     authdomain.RoleUser,
			Provider: authdomain.ProviderGoogle,
			GoogleID: tokenInfo.Sub,
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if user.GoogleID == "" {
		user.GoogleID = tokenInfo.Sub
		if err := u.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return user, nil
}
