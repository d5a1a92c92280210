package domain

import "time"

type RecipeCategory struct {
	ID   string `json:"_id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Image is the uploaded recipe photo; only the reference is stored.
type Image struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type Ingredient struct {
	ItemID   string  `json:"_id"`
	Quantity float64 `json:"quantity"`
	UnitID   string  `json:"unit"`
}

type Recipe struct {
	ID            string       `json:"_id" gorm:"primaryKey"`
	Name          string       `json:"name" gorm:"not null"`
	TimeInMinutes int          `json:"timeInMinutes" gorm:"not null"`
	Image         Image        `json:"image" gorm:"serializer:json"`
	Ingredients   []Ingredient `json:"ingredients" gorm:"serializer:json"`
	Instructions  []string     `json:"instructions" gorm:"serializer:json"`
	Notes         []string     `json:"notes" gorm:"serializer:json"`
	CategoryIDs   []string     `json:"categories" gorm:"serializer:json"`
	CreatedByID   string       `json:"createdBy" gorm:"index"`
	Approved      bool         `json:"approved" gorm:"not null;default:false"`
	Serves        int          `json:"serves" gorm:"not null"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
