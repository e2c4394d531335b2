package models

import (
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// Request models

// CreatePropertyRequest request to publish a new listing
type CreatePropertyRequest struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	SquareMeters float64             `json:"squareMeters"`
	PropertyType domain.PropertyType `json:"propertyType"`
	Location     string              `json:"location"`
	Price        float64             `json:"price"`
	MainImageURL string              `json:"mainImageUrl"`
	IsVisible    *bool               `json:"isVisible,omitempty"` // nil = visible
	ImageURLs    []string            `json:"imageUrls,omitempty"`
}

// UpdatePropertyRequest request to edit a listing.
// All fields are optional, only provided values are updated.
// ImageURLs, when present, replaces the whole gallery.
type UpdatePropertyRequest struct {
	Name         *string              `json:"name,omitempty"`
	Description  *string              `json:"description,omitempty"`
	SquareMeters *float64             `json:"squareMeters,omitempty"`
	PropertyType *domain.PropertyType `json:"propertyType,omitempty"`
	Location     *string              `json:"location,omitempty"`
	Price        *float64             `json:"price,omitempty"`
	MainImageURL *string              `json:"mainImageUrl,omitempty"`
	IsVisible    *bool                `json:"isVisible,omitempty"`
	ImageURLs    *[]string            `json:"imageUrls,omitempty"`
}

// ListRequest filter for the property listing
type ListRequest struct {
	Type *domain.PropertyType `json:"type,omitempty"`

	// IncludeHidden is set only on the admin listing path
	IncludeHidden bool `json:"-"`
}

// Response models

// PropertyImageResponse one gallery image
type PropertyImageResponse struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
	Position int    `json:"position"`
}

// PropertyResponse one listing
type PropertyResponse struct {
	ID           int64                   `json:"id"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	SquareMeters float64                 `json:"squareMeters"`
	PropertyType domain.PropertyType     `json:"propertyType"`
	Location     string                  `json:"location"`
	Price        float64                 `json:"price"`
	MainImageURL string                  `json:"mainImageUrl"`
	IsVisible    bool                    `json:"isVisible"`
	Images       []PropertyImageResponse `json:"images,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// PropertyListResponse list of listings
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// Conversion helpers

// FromDomainProperty converts the domain model into the DTO
func FromDomainProperty(p *domain.Property) *PropertyResponse {
	if p == nil {
		return nil
	}

	resp := &PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		SquareMeters: p.SquareMeters,
		PropertyType: p.PropertyType,
		Location:     p.Location,
		Price:        p.Price,
		MainImageURL: p.MainImageURL,
		IsVisible:    p.IsVisible,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	for _, img := range p.Images {
		resp.Images = append(resp.Images, PropertyImageResponse{
			ID:       img.ID,
			ImageURL: img.ImageURL,
			Position: img.Position,
		})
	}

	return resp
}
