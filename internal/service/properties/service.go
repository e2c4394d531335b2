package properties

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	propertyRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/property"
	"github.com/habitatum/HBT-AppointmentService/internal/service/properties/models"
)

// Service manages the real-estate catalog. The public site only ever
// sees visible listings, the admin panel sees everything.
type Service struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService creates the properties service
func NewService(propertyRepo PropertyRepository, logger Logger) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// List returns listings matching the filter. Hidden listings are
// included only when the request came through the admin path.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.PropertyListResponse, error) {
	if req.Type != nil && !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, *req.Type)
	}

	props, err := s.propertyRepo.List(ctx, domain.PropertiesFilter{
		Type:        req.Type,
		VisibleOnly: !req.IncludeHidden,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.PropertyListResponse{
		Properties: make([]models.PropertyResponse, 0, len(props)),
	}
	for _, p := range props {
		resp.Properties = append(resp.Properties, *models.FromDomainProperty(p))
	}

	return resp, nil
}

// GetByID returns one listing with its gallery. On the public path a
// hidden listing answers as not found.
func (s *Service) GetByID(ctx context.Context, id int64, includeHidden bool) (*models.PropertyResponse, error) {
	prop, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("GetByID: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !prop.IsVisible && !includeHidden {
		s.logger.Warn("GetByID: property id=%d is hidden", id)
		return nil, ErrPropertyNotFound
	}

	return models.FromDomainProperty(prop), nil
}

// Create publishes a new listing
func (s *Service) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Create: name=%q, type=%s", req.Name, req.PropertyType)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	prop := &domain.Property{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		SquareMeters: req.SquareMeters,
		PropertyType: req.PropertyType,
		Location:     req.Location,
		Price:        req.Price,
		MainImageURL: req.MainImageURL,
		IsVisible:    isVisible,
		Images:       imagesFromURLs(req.ImageURLs),
	}

	created, err := s.propertyRepo.Create(ctx, prop)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created property id=%d", created.ID)
	return models.FromDomainProperty(created), nil
}

// Update edits a listing. Hiding a listing stops new bookings for it,
// already booked appointments stay.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Update: id=%d", id)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	prop, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: failed to get property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyUpdate(prop, req)

	if err := s.propertyRepo.Update(ctx, prop); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated property id=%d", id)
	return models.FromDomainProperty(updated), nil
}

// Delete removes a listing. Its appointments and gallery go with it
// through the storage cascade.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Delete: property id=%d not found", id)
			return ErrPropertyNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted property id=%d", id)
	return nil
}

// Validation helpers

func validateCreateRequest(req *models.CreatePropertyRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !req.PropertyType.Valid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, req.PropertyType)
	}
	if req.SquareMeters <= 0 {
		return fmt.Errorf("%w: squareMeters must be positive", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateUpdateRequest(req *models.UpdatePropertyRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if req.PropertyType != nil && !req.PropertyType.Valid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, *req.PropertyType)
	}
	if req.SquareMeters != nil && *req.SquareMeters <= 0 {
		return fmt.Errorf("%w: squareMeters must be positive", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func applyUpdate(prop *domain.Property, req *models.UpdatePropertyRequest) {
	if req.Name != nil {
		prop.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		prop.Description = *req.Description
	}
	if req.SquareMeters != nil {
		prop.SquareMeters = *req.SquareMeters
	}
	if req.PropertyType != nil {
		prop.PropertyType = *req.PropertyType
	}
	if req.Location != nil {
		prop.Location = *req.Location
	}
	if req.Price != nil {
		prop.Price = *req.Price
	}
	if req.MainImageURL != nil {
		prop.MainImageURL = *req.MainImageURL
	}
	if req.IsVisible != nil {
		prop.IsVisible = *req.IsVisible
	}
	if req.ImageURLs != nil {
		prop.Images = imagesFromURLs(*req.ImageURLs)
	}
}

func imagesFromURLs(urls []string) []domain.PropertyImage {
	images := make([]domain.PropertyImage, 0, len(urls))
	for i, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		images = append(images, domain.PropertyImage{ImageURL: url, Position: i})
	}
	return images
}
