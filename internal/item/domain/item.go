package domain

// ItemCategory groups items for browsing; faIcon names the Font
// Awesome icon the client renders for the category.
type ItemCategory struct {
	ID     string `json:"_id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"uniqueIndex;not null"`
	FaIcon string `json:"faIcon" gorm:"uniqueIndex;not null"`
}

type Item struct {
	ID           string   `json:"_id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"not null"`
	CategoryID   string   `json:"category" gorm:"not null"`
	ValidUnitIDs []string `json:"validUnits" gorm:"serializer:json"`
	DefaultUnit  string   `json:"defaultUnit" gorm:"not null"`
	// Density (g per ml) allows conversion between weight and volume
	// units for items measurable both ways.
	Density *float64 `json:"density,omitempty"`
}
