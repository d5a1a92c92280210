package delivery

import (
	"net/http"

	authdelivery "crockpot-backend/internal/auth/delivery"
	recipedomain "crockpot-backend/internal/recipe/domain"
	"crockpot-backend/internal/recipe/repository"
	"crockpot-backend/internal/recipe/usecase"
	"crockpot-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles recipe catalog requests.
type RecipeHandler struct {
	recipeUsecase usecase.RecipeUsecase
	recipeRepo    repository.RecipeRepository
}

func NewRecipeHandler(recipeUsecase usecase.RecipeUsecase, recipeRepo repository.RecipeRepository) *RecipeHandler {
	return &RecipeHandler{recipeUsecase: recipeUsecase, recipeRepo: recipeRepo}
}

type createRecipeCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetRecipes lists approved recipes.
// GET /recipes
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	recipes, err := h.recipeUsecase.ListApproved()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipeByID returns a single recipe.
// GET /recipes/:id
func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	recipe, err := h.recipeUsecase.GetByID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe submits a new recipe under the authenticated user. It
// stays hidden from the catalog until approved.
// POST /recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		abortWithError(c, apperrors.NewUnauthorized("No token provided", "TOKEN_MISSING"))
		return
	}

	var req usecase.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	recipe, err := h.recipeUsecase.Create(user.ID, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// ApproveRecipe publishes a submitted recipe.
// PATCH /recipes/:id/approve (admin)
func (h *RecipeHandler) ApproveRecipe(c *gin.Context) {
	recipe, err := h.recipeUsecase.Approve(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe and scrubs it from user favourites
// and menus.
// DELETE /recipes/:id (admin)
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipeUsecase.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

// GetRecipeCategories lists recipe categories.
// GET /recipes/categories
func (h *RecipeHandler) GetRecipeCategories(c *gin.Context) {
	categories, err := h.recipeRepo.FindAllCategories()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateRecipeCategory adds a recipe category.
// POST /recipes/category (admin)
func (h *RecipeHandler) CreateRecipeCategory(c *gin.Context) {
	var req createRecipeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperrors.NewBadRequest(err.Error()))
		return
	}

	category := &recipedomain.RecipeCategory{Name: req.Name}
	if err := h.recipeRepo.CreateCategory(category); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
