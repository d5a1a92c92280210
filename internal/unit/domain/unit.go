package domain

const (
	TypeWeight = "weight"
	TypeVolume = "volume"
	TypeCount  = "count"
	TypeCustom = "custom"
)

// Conversion maps a unit onto its standard unit, e.g. 1 tbsp = 15 ml
// gives ToStandard 15 with the ml unit as standard.
type Conversion struct {
	ToStandard     float64 `json:"toStandard"`
	StandardUnitID string  `json:"standardUnit"`
}

type Unit struct {
	ID           string      `json:"_id" gorm:"primaryKey"`
	Name         string      `json:"name" gorm:"uniqueIndex;not null"`
	Abbreviation string      `json:"abbreviation" gorm:"uniqueIndex;not null"`
	Type         string      `json:"type" gorm:"not null"` // weight, volume, count or custom
	Conversion   *Conversion `json:"conversions,omitempty" gorm:"serializer:json"`
}
