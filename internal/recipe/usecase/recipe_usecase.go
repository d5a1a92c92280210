package usecase

import (
	recipedomain "crockpot-backend/internal/recipe/domain"
	"crockpot-backend/internal/recipe/repository"
	"crockpot-backend/pkg/apperrors"
)

// UserCleaner removes references to a deleted recipe from every user
// record (favourites and menus).
type UserCleaner interface {
	RemoveRecipeReferences(recipeID string) error
}

// CreateRecipeRequest carries the fields a user may set when
// submitting a recipe. Approval is decided by admins, never here.
type CreateRecipeRequest struct {
	Name          string                    `json:"name" binding:"required"`
	TimeInMinutes int                       `json:"timeInMinutes" binding:"required,gt=0"`
	Image         recipedomain.Image        `json:"image"`
	Ingredients   []recipedomain.Ingredient `json:"ingredients" binding:"required,min=1"`
	Instructions  []string                  `json:"instructions" binding:"required,min=1"`
	Notes         []string                  `json:"notes"`
	Categories    []string                  `json:"categories"`
	Serves        int                       `json:"serves" binding:"required,gt=0"`
}

// RecipeUsecase owns recipe lifecycle rules: submissions start
// unapproved, reads surface only approved recipes, deletion scrubs
// user references.
type RecipeUsecase interface {
	Create(userID string, req *CreateRecipeRequest) (*recipedomain.Recipe, error)
	ListApproved() ([]recipedomain.Recipe, error)
	GetByID(id string) (*recipedomain.Recipe, error)
	Approve(id string) (*recipedomain.Recipe, error)
	Delete(id string) error
}

type recipeUsecase struct {
	recipeRepo repository.RecipeRepository
	users      UserCleaner
}

func NewRecipeUsecase(recipeRepo repository.RecipeRepository, users UserCleaner) RecipeUsecase {
	return &recipeUsecase{recipeRepo: recipeRepo, users: users}
}

func (u *recipeUsecase) Create(userID string, req *CreateRecipeRequest) (*recipedomain.Recipe, error) {
	recipe := &recipedomain.Recipe{
		Name:          req.Name,
		TimeInMinutes: req.TimeInMinutes,
		Image:         req.Image,
		Ingredients:   req.Ingredients,
		Instructions:  req.Instructions,
		Notes:         req.Notes,
		CategoryIDs:   req.Categories,
		CreatedByID:   userID,
		Approved:      false,
		Serves:        req.Serves,
	}

	if err := u.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (u *recipeUsecase) ListApproved() ([]recipedomain.Recipe, error) {
	return u.recipeRepo.FindApproved()
}

func (u *recipeUsecase) GetByID(id string) (*recipedomain.Recipe, error) {
	recipe, err := u.recipeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, apperrors.NewNotFound("Recipe not found")
	}
	return recipe, nil
}

func (u *recipeUsecase) Approve(id string) (*recipedomain.Recipe, error) {
	recipe, err := u.GetByID(id)
	if err != nil {
		return nil, err
	}

	recipe.Approved = true
	if err := u.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (u *recipeUsecase) Delete(id string) error {
	recipe, err := u.recipeRepo.FindByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return apperrors.NewNotFound("Recipe not found")
	}

	if err := u.recipeRepo.Delete(id); err != nil {
		return err
	}

	// Users may still reference the recipe from favourites or menus.
	return u.users.RemoveRecipeReferences(id)
}
