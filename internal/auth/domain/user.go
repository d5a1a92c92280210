package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// MenuEntry is a recipe on the user's menu, scaled to a number of
// servings.
type MenuEntry struct {
	RecipeID string `json:"_id"`
	Serves   int    `json:"serves"`
}

type User struct {
	ID               string      `json:"_id" gorm:"primaryKey"`
	Email            string      `json:"email" gorm:"uniqueIndex;not null"`
	Password         string      `json:"-"` // Never return password in JSON
	Name             string      `json:"name" gorm:"not null"`
	Role             string      `json:"role" gorm:"not null;default:user"` // "user" or "admin"
	Provider         string      `json:"provider" gorm:"not null"`          // "local" or "google"
	GoogleID         string      `json:"-"`
	FavouriteRecipes []string    `json:"favouriteRecipes" gorm:"serializer:json"`
	RecipeMenu       []MenuEntry `json:"recipeMenu" gorm:"serializer:json"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// IsAdmin reports whether the user may call admin-only routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
