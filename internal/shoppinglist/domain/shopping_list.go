package domain

import "time"

const (
	SourceRecipe = "recipe"
	SourceExtra  = "extra"
)

// RecipeContribution records how much of an item's quantity a recipe
// on the menu contributed.
type RecipeContribution struct {
	RecipeID string  `json:"recipeId"`
	Quantity float64 `json:"quantity"`
}

type ShoppingListItem struct {
	ID       string               `json:"_id" gorm:"primaryKey"`
	ListID   string               `json:"-" gorm:"index;not null"`
	ItemID   string               `json:"item" gorm:"not null"`
	Quantity float64              `json:"quantity" gorm:"not null"`
	UnitID   string               `json:"unit" gorm:"not null"`
	Obtained bool                 `json:"obtained" gorm:"not null;default:false"`
	Source   string               `json:"source" gorm:"not null"` // "recipe" or "extra"
	Recipes  []RecipeContribution `json:"recipes,omitempty" gorm:"serializer:json"`
}

// ShoppingList is a user's single active list.
type ShoppingList struct {
	ID        string             `json:"_id" gorm:"primaryKey"`
	UserID    string             `json:"user" gorm:"index;not null"`
	Items     []ShoppingListItem `json:"items" gorm:"foreignKey:ListID"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
