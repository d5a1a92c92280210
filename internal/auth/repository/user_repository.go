package repository

import (
	"errors"
	"time"

	authdomain "crockpot-backend/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
	RemoveRecipeReferences(recipeID string) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// RemoveRecipeReferences drops a deleted recipe from every user's
// favourites and menu. The reference arrays are serialized JSON, so
// candidates are narrowed with a LIKE match and filtered in memory.
func (r *userRepository) RemoveRecipeReferences(recipeID string) error {
	pattern := "%" + recipeID + "%"

	var users []authdomain.User
	err := r.db.
		Where("favourite_recipes LIKE ? OR recipe_menu LIKE ?", pattern, pattern).
		Find(&users).Error
	if err != nil {
		return err
	}

	for i := range users {
		user := &users[i]

		favourites := user.FavouriteRecipes[:0]
		for _, id := range user.FavouriteRecipes {
			if id != recipeID {
				favourites = append(favourites, id)
			}
		}
		user.FavouriteRecipes = favourites

		menu := user.RecipeMenu[:0]
		for _, entry := range user.RecipeMenu {
			if entry.RecipeID != recipeID {
				menu = append(menu, entry)
			}
		}
		user.RecipeMenu = menu

		if err := r.Update(user); err != nil {
			return err
		}
	}

	return nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
