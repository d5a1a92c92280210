package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	recipedomain "crockpot-backend/internal/recipe/domain"
	"crockpot-backend/internal/recipe/usecase"
	"crockpot-backend/pkg/apperrors"
)

type stubRecipeRepo struct {
	recipes map[string]*recipedomain.Recipe
	nextID  int
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[string]*recipedomain.Recipe)}
}

func (s *stubRecipeRepo) Create(recipe *recipedomain.Recipe) error {
	s.nextID++
	recipe.ID = recipeID(s.nextID)
	copied := *recipe
	s.recipes[recipe.ID] = &copied
	return nil
}

func (s *stubRecipeRepo) FindApproved() ([]recipedomain.Recipe, error) {
	var approved []recipedomain.Recipe
	for _, recipe := range s.recipes {
		if recipe.Approved {
			approved = append(approved, *recipe)
		}
	}
	return approved, nil
}

func (s *stubRecipeRepo) FindByID(id string) (*recipedomain.Recipe, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, nil
	}
	copied := *recipe
	return &copied, nil
}

func (s *stubRecipeRepo) Update(recipe *recipedomain.Recipe) error {
	copied := *recipe
	s.recipes[recipe.ID] = &copied
	return nil
}

func (s *stubRecipeRepo) Delete(id string) error {
	delete(s.recipes, id)
	return nil
}

func (s *stubRecipeRepo) CreateCategory(category *recipedomain.RecipeCategory) error {
	return nil
}

func (s *stubRecipeRepo) FindAllCategories() ([]recipedomain.RecipeCategory, error) {
	return nil, nil
}

func recipeID(n int) string {
	return string(rune('a' + n))
}

type stubCleaner struct {
	removed []string
}

func (s *stubCleaner) RemoveRecipeReferences(recipeID string) error {
	s.removed = append(s.removed, recipeID)
	return nil
}

func newRecipeRequest() *usecase.CreateRecipeRequest {
	return &usecase.CreateRecipeRequest{
		Name:          "Stew",
		TimeInMinutes: 90,
		Ingredients:   []recipedomain.Ingredient{{ItemID: "carrot", Quantity: 2, UnitID: "kg"}},
		Instructions:  []string{"Chop", "Simmer"},
		Serves:        4,
	}
}

func TestCreateStartsUnapproved(t *testing.T) {
	repo := newStubRecipeRepo()
	uc := usecase.NewRecipeUsecase(repo, &stubCleaner{})

	recipe, err := uc.Create("u1", newRecipeRequest())
	require.NoError(t, err)
	require.False(t, recipe.Approved)
	require.Equal(t, "u1", recipe.CreatedByID)

	// Unapproved submissions stay out of the catalog.
	approved, err := uc.ListApproved()
	require.NoError(t, err)
	require.Empty(t, approved)
}

func TestApprovePublishesRecipe(t *testing.T) {
	repo := newStubRecipeRepo()
	uc := usecase.NewRecipeUsecase(repo, &stubCleaner{})

	recipe, err := uc.Create("u1", newRecipeRequest())
	require.NoError(t, err)

	published, err := uc.Approve(recipe.ID)
	require.NoError(t, err)
	require.True(t, published.Approved)

	approved, err := uc.ListApproved()
	require.NoError(t, err)
	require.Len(t, approved, 1)
}

func TestGetByIDUnknownRecipe(t *testing.T) {
	uc := usecase.NewRecipeUsecase(newStubRecipeRepo(), &stubCleaner{})

	_, err := uc.GetByID("missing")

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, 404, appErr.Status)
}

func TestDeleteScrubsUserReferences(t *testing.T) {
	repo := newStubRecipeRepo()
	cleaner := &stubCleaner{}
	uc := usecase.NewRecipeUsecase(repo, cleaner)

	recipe, err := uc.Create("u1", newRecipeRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(recipe.ID))
	require.Equal(t, []string{recipe.ID}, cleaner.removed)

	_, err = uc.GetByID(recipe.ID)
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, 404, appErr.Status)
}

func TestDeleteUnknownRecipe(t *testing.T) {
	cleaner := &stubCleaner{}
	uc := usecase.NewRecipeUsecase(newStubRecipeRepo(), cleaner)

	err := uc.Delete("missing")

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, 404, appErr.Status)
	require.Empty(t, cleaner.removed)
}
