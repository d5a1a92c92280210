package usecase

import (
	authdomain "crockpot-backend/internal/auth/domain"
	authdto "crockpot-backend/internal/auth/dto"
)

// AuthUsecase resolves credentials to user records. Token issuance is
// the delivery layer's job; this layer only talks to the user store.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (*authdomain.User, error)
	GoogleSignIn(idToken string) (*authdomain.User, error)
}
