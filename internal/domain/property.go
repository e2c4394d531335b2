package domain

import "time"

// PropertyType kind of real-estate listing
type PropertyType string

const (
	PropertyCasa         PropertyType = "casa"
	PropertyDepartamento PropertyType = "departamento"
	PropertyTerreno      PropertyType = "terreno"
	PropertyLocal        PropertyType = "local"
)

// Valid reports whether the value is a known property type
func (p PropertyType) Valid() bool {
	switch p {
	case PropertyCasa, PropertyDepartamento, PropertyTerreno, PropertyLocal:
		return true
	}
	return false
}

// Property represents a real-estate listing. Appointments belong to a
// property and are removed with it.
type Property struct {
	ID           int64
	Name         string
	Description  string
	SquareMeters float64
	PropertyType PropertyType
	Location     string
	Price        float64
	MainImageURL string
	IsVisible    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Images []PropertyImage
}

// PropertyImage additional gallery image of a property
type PropertyImage struct {
	ID         int64
	PropertyID int64
	ImageURL   string
	Position   int
}

// PropertiesFilter filter for the property listing
type PropertiesFilter struct {
	Type        *PropertyType // nil = all types
	VisibleOnly bool          // public listing shows visible properties only
}
