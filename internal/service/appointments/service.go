package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	appointmentRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/appointment"
	propertyRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/property"
	"github.com/habitatum/HBT-AppointmentService/internal/service/appointments/models"
)

// Service admin side of the appointment book: listings, lookups and
// cancellations
type Service struct {
	apptRepo     AppointmentRepository
	propertyRepo PropertyRepository
	calendar     CalendarClient
	businessTZ   *time.Location
	logger       Logger
}

// NewService creates the appointments service. calendar may be nil when
// the integration is disabled.
func NewService(apptRepo AppointmentRepository, propertyRepo PropertyRepository, calendar CalendarClient, businessTZ *time.Location, logger Logger) *Service {
	return &Service{
		apptRepo:     apptRepo,
		propertyRepo: propertyRepo,
		calendar:     calendar,
		businessTZ:   businessTZ,
		logger:       logger,
	}
}

// GetByID returns one appointment with its property name resolved
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainAppointment(appt)
	s.resolvePropertyNames(ctx, resp)

	return resp, nil
}

// List returns appointments matching the filter, newest first per the
// repository ordering, with property names resolved
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}
	if req.Type != nil && !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, *req.Type)
	}

	// The filter dates are wall dates from form input; anchor the range
	// to business-timezone day boundaries before comparing against the
	// scheduled_at instants
	filter := req.ToDomainFilter()
	if filter.StartDate != nil {
		startDate := domain.WallDate(*filter.StartDate, s.businessTZ)
		filter.StartDate = &startDate
	}
	if filter.EndDate != nil {
		endDate := domain.WallDate(*filter.EndDate, s.businessTZ)
		filter.EndDate = &endDate
	}

	appts, err := s.apptRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.AppointmentListResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(appts)),
	}

	// Property names are resolved through a small per-request cache so a
	// listing with many visits to the same property costs one lookup
	names := map[int64]string{}
	for _, a := range appts {
		item := models.FromDomainAppointment(a)
		item.PropertyName = s.propertyName(ctx, names, a.PropertyID)
		resp.Appointments = append(resp.Appointments, *item)
	}

	return resp, nil
}

// ListByProperty returns every appointment booked for one property
func (s *Service) ListByProperty(ctx context.Context, propertyID int64) (*models.AppointmentListResponse, error) {
	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	appts, err := s.apptRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		s.logger.Error("ListByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: ListByProperty - repository error: %v", ErrInternal, err)
	}

	resp := &models.AppointmentListResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(appts)),
	}

	names := map[int64]string{}
	for _, a := range appts {
		item := models.FromDomainAppointment(a)
		item.PropertyName = s.propertyName(ctx, names, a.PropertyID)
		resp.Appointments = append(resp.Appointments, *item)
	}

	return resp, nil
}

// Cancel removes an appointment and, best effort, its external
// calendar event. The freed slot becomes bookable again immediately.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to get appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.GoogleEventID != nil && s.calendar != nil {
		if err := s.calendar.DeleteEvent(ctx, *appt.GoogleEventID); err != nil {
			s.logger.Error("Cancel: failed to delete calendar event %s for appointment id=%d: %v",
				*appt.GoogleEventID, id, err)
		}
	}

	if err := s.apptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

func (s *Service) resolvePropertyNames(ctx context.Context, resp *models.AppointmentResponse) {
	resp.PropertyName = s.propertyName(ctx, map[int64]string{}, resp.PropertyID)
}

// propertyName resolves a property name with a per-request cache.
// Lookup failures only cost the name, the listing still succeeds.
func (s *Service) propertyName(ctx context.Context, cache map[int64]string, propertyID int64) string {
	if name, ok := cache[propertyID]; ok {
		return name
	}

	prop, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if !errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("propertyName: failed to get property id=%d: %v", propertyID, err)
		}
		cache[propertyID] = ""
		return ""
	}

	cache[propertyID] = prop.Name
	return prop.Name
}
