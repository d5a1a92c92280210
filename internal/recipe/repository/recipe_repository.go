package repository

import (
	"errors"
	"time"

	recipedomain "crockpot-backend/internal/recipe/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository defines the interface for recipe and recipe-category data access
type RecipeRepository interface {
	Create(recipe *recipedomain.Recipe) error
	FindApproved() ([]recipedomain.Recipe, error)
	FindByID(id string) (*recipedomain.Recipe, error)
	Update(recipe *recipedomain.Recipe) error
	Delete(id string) error
	CreateCategory(category *recipedomain.RecipeCategory) error
	FindAllCategories() ([]recipedomain.RecipeCategory, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *recipedomain.Recipe) error {
	recipe.ID = uuid.New().String()
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindApproved() ([]recipedomain.Recipe, error) {
	var recipes []recipedomain.Recipe
	if err := r.db.Where("approved = ?", true).Order("name").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) FindByID(id string) (*recipedomain.Recipe, error) {
	var recipe recipedomain.Recipe
	err := r.db.Where("id = ?", id).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Update(recipe *recipedomain.Recipe) error {
	recipe.UpdatedAt = time.Now()
	return r.db.Save(recipe).Error
}

func (r *recipeRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&recipedomain.Recipe{}).Error
}

func (r *recipeRepository) CreateCategory(category *recipedomain.RecipeCategory) error {
	category.ID = uuid.New().String()
	return r.db.Create(category).Error
}

func (r *recipeRepository) FindAllCategories() ([]recipedomain.RecipeCategory, error) {
	var categories []recipedomain.RecipeCategory
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
