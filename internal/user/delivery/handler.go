package delivery

import (
	"net/http"

	authdelivery "crockpot-backend/internal/auth/delivery"
	authdomain "crockpot-backend/internal/auth/domain"
	authrepo "crockpot-backend/internal/auth/repository"
	reciperepo "crockpot-backend/internal/recipe/repository"
	"crockpot-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated user's own record, favourites
// and recipe menu.
type UserHandler struct {
	userRepo   authrepo.UserRepository
	recipeRepo reciperepo.RecipeRepository
}

func NewUserHandler(userRepo authrepo.UserRepository, recipeRepo reciperepo.RecipeRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, recipeRepo: recipeRepo}
}

type updateMenuRequest struct {
	RecipeMenu []authdomain.MenuEntry `json:"recipeMenu" binding:"required,dive"`
}

// Me returns the caller's user record, re-read from the store.
// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	current, ok := authdelivery.CurrentUser(c)
	if !ok {
		abortWithError(c, apperrors.NewUnauthorized("No token provided", "TOKEN_MISSING"))
		return
	}

	user, err := h.userRepo.FindByID(current.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if user == nil {
		abortWithError(c, apperrors.NewUnauthorized("User not found", "USER_NOT_FOUND"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// ToggleFavourite adds the recipe to the caller's favourites, or
// removes it when already present.
// POST /users/favourites/:recipeId
func (h *UserHandler) ToggleFavourite(c *gin.Context) {
	current, ok := authdelivery.CurrentUser(c)
	if !ok {
		abortWithError(c, apperrors.NewUnauthorized("No token provided", "TOKEN_MISSING"))
		return
	}

	recipeID := c.Param("recipeId")
	recipe, err := h.recipeRepo.FindByID(recipeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if recipe == nil {
		abortWithError(c, apperrors.NewNotFound("Recipe not found"))
		return
	}

	favourites := current.FavouriteRecipes[:0:0]
	removed := false
	for _, id := range current.FavouriteRecipes {
		if id == recipeID {
			removed = true
			continue
		}
		favourites = append(favourites, id)
	}
	if !removed {
		favourites = append(favourites, recipeID)
	}
	current.FavouriteRecipes = favourites

	if err := h.userRepo.Update(current); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// UpdateMenu replaces the caller's recipe menu.
// PUT /users/menu
func (h *UserHandler) UpdateMenu(c *gin.Context) {
	current, ok := authdelivery.CurrentUser(c)
	if !ok {
		abortWithError(c, apperrors.NewUnauthorized("No token provided", "TOKEN_MISSING"))
		return
	}

	var req updateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	for _, entry := range req.RecipeMenu {
		recipe, err := h.recipeRepo.FindByID(entry.RecipeID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if recipe == nil {
			abortWithError(c, apperrors.NewBadRequest("Menu references an unknown recipe"))
			return
		}
	}

	current.RecipeMenu = req.RecipeMenu
	if err := h.userRepo.Update(current); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
