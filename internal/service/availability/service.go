package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	availabledayRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/availableday"
	"github.com/habitatum/HBT-AppointmentService/internal/service/availability/models"
)

// Service is the availability registry: it answers how many viewings a
// day still accepts and manages the per-day capacity records.
type Service struct {
	dayRepo      AvailableDayRepository
	apptRepo     AppointmentRepository
	timeProvider TimeProvider
	businessTZ   *time.Location
	logger       Logger
}

// NewService creates the availability service
func NewService(
	dayRepo AvailableDayRepository,
	apptRepo AppointmentRepository,
	businessTZ *time.Location,
	logger Logger,
) *Service {
	return &Service{
		dayRepo:      dayRepo,
		apptRepo:     apptRepo,
		timeProvider: &RealTimeProvider{},
		businessTZ:   businessTZ,
		logger:       logger,
	}
}

// Public read operations

// GetAvailability returns the capacity record for a day and appointment
// type, or ErrDayNotFound when the administrator never opened it
func (s *Service) GetAvailability(ctx context.Context, date time.Time, apptType domain.AppointmentType) (*domain.AvailableDay, error) {
	day := domain.WallDate(date, s.businessTZ)

	availableDay, err := s.dayRepo.GetByDateAndType(ctx, day, apptType)
	if err != nil {
		if errors.Is(err, availabledayRepo.ErrDayNotFound) {
			return nil, ErrDayNotFound
		}
		s.logger.Error("GetAvailability: failed to get day %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get available day: %v", ErrInternal, err)
	}

	return availableDay, nil
}

// BookedCount returns how many appointments already occupy the day for
// the given type. A day with no appointments yields zero, configured or not.
func (s *Service) BookedCount(ctx context.Context, date time.Time, apptType domain.AppointmentType) (int, error) {
	day := domain.WallDate(date, s.businessTZ)

	booked, err := s.apptRepo.CountForDay(ctx, day, apptType)
	if err != nil {
		s.logger.Error("BookedCount: failed to count day %s: %v", day.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	return booked, nil
}

// IsPast reports whether the date falls on a day before today in the
// business timezone
func (s *Service) IsPast(date time.Time) bool {
	return domain.IsPastDay(date, s.timeProvider.Now(), s.businessTZ)
}

// DayStatus builds the full public availability status for one day:
// configured or not, booked and remaining counts, and whether the day
// can still accept a booking
func (s *Service) DayStatus(ctx context.Context, date time.Time, apptType domain.AppointmentType) (*models.DayStatusResponse, error) {
	if !apptType.Valid() {
		return nil, fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, apptType)
	}

	day := domain.WallDate(date, s.businessTZ)
	status := &models.DayStatusResponse{
		Date:            day.Format(domain.DateFormat),
		AppointmentType: apptType,
		IsPast:          s.IsPast(day),
	}

	availableDay, err := s.GetAvailability(ctx, day, apptType)
	if err != nil {
		if errors.Is(err, ErrDayNotFound) {
			// Unconfigured days are a normal answer, not an error
			return status, nil
		}
		return nil, err
	}

	booked, err := s.BookedCount(ctx, day, apptType)
	if err != nil {
		return nil, err
	}

	status.Configured = true
	status.MaxCapacity = availableDay.MaxCapacity
	status.BookedCount = booked
	status.RemainingCapacity = availableDay.RemainingCapacity(booked)
	status.Available = !status.IsPast && !availableDay.IsFull(booked)

	return status, nil
}

// IsAvailable reports whether the day can accept one more booking of
// the given type
func (s *Service) IsAvailable(ctx context.Context, date time.Time, apptType domain.AppointmentType) (bool, error) {
	status, err := s.DayStatus(ctx, date, apptType)
	if err != nil {
		return false, err
	}
	return status.Available, nil
}

// MonthOverview builds the availability grid for a whole month. Booked
// counts come from a single range query over the month's appointments,
// bucketed per day, instead of one count query per configured day.
func (s *Service) MonthOverview(ctx context.Context, req *models.MonthRequest) (*models.MonthOverviewResponse, error) {
	if err := validateMonthRequest(req); err != nil {
		s.logger.Warn("MonthOverview: validation failed: %v", err)
		return nil, err
	}

	days, err := s.dayRepo.ListByMonth(ctx, req.Year, req.Month, req.AppointmentType, s.businessTZ)
	if err != nil {
		s.logger.Error("MonthOverview: failed to list days for %d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: failed to list available days: %v", ErrInternal, err)
	}

	bookedByDay, err := s.countMonthBookings(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	resp := &models.MonthOverviewResponse{
		Year:            req.Year,
		Month:           int(req.Month),
		AppointmentType: req.AppointmentType,
		Days:            make([]models.DayStatusResponse, 0, len(days)),
	}

	for _, d := range days {
		// The DATE column scans as midnight UTC, another wall date
		date := domain.WallDate(d.Date, s.businessTZ)
		dateKey := date.Format(domain.DateFormat)
		booked := bookedByDay[dateKey]
		isPast := domain.IsPastDay(date, now, s.businessTZ)

		resp.Days = append(resp.Days, models.DayStatusResponse{
			Date:              dateKey,
			AppointmentType:   d.AppointmentType,
			Configured:        true,
			MaxCapacity:       d.MaxCapacity,
			BookedCount:       booked,
			RemainingCapacity: d.RemainingCapacity(booked),
			Available:         !isPast && !d.IsFull(booked),
			IsPast:            isPast,
		})
	}

	return resp, nil
}

// countMonthBookings fetches the month's appointments of the requested
// type and buckets them by calendar day
func (s *Service) countMonthBookings(ctx context.Context, req *models.MonthRequest) (map[string]int, error) {
	monthStart := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, s.businessTZ)
	// The filter treats EndDate as inclusive, so pass the last day of the month
	monthEnd := monthStart.AddDate(0, 1, -1)
	apptType := req.AppointmentType

	appts, err := s.apptRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		StartDate: &monthStart,
		EndDate:   &monthEnd,
		Type:      &apptType,
	})
	if err != nil {
		s.logger.Error("MonthOverview: failed to list appointments for %d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	bookedByDay := make(map[string]int, len(appts))
	for _, a := range appts {
		key := domain.DateOnly(a.ScheduledAt, s.businessTZ).Format(domain.DateFormat)
		bookedByDay[key]++
	}

	return bookedByDay, nil
}

// ListDays returns the raw capacity records of one month for the admin
// panel, notes included
func (s *Service) ListDays(ctx context.Context, req *models.MonthRequest) (*models.AvailableDayListResponse, error) {
	if err := validateMonthRequest(req); err != nil {
		s.logger.Warn("ListDays: validation failed: %v", err)
		return nil, err
	}

	days, err := s.dayRepo.ListByMonth(ctx, req.Year, req.Month, req.AppointmentType, s.businessTZ)
	if err != nil {
		s.logger.Error("ListDays: failed to list days for %d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: failed to list available days: %v", ErrInternal, err)
	}

	resp := &models.AvailableDayListResponse{
		Days: make([]models.AvailableDayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, *models.FromDomainDay(d))
	}

	return resp, nil
}

// Administrative operations

// CreateDay opens a day for bookings of one appointment type
func (s *Service) CreateDay(ctx context.Context, req *models.CreateDayRequest) (*models.AvailableDayResponse, error) {
	s.logger.Info("CreateDay: date=%s, type=%s, capacity=%d",
		req.Date.Format(domain.DateFormat), req.AppointmentType, req.MaxCapacity)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.AppointmentType.Valid() {
		return nil, fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.AppointmentType)
	}

	maxCapacity := req.MaxCapacity
	if maxCapacity == 0 {
		maxCapacity = domain.DefaultMaxCapacity
	}
	if err := validateCapacity(maxCapacity); err != nil {
		s.logger.Warn("CreateDay: validation failed: %v", err)
		return nil, err
	}
	if err := validateNotes(req.AdminNotes); err != nil {
		s.logger.Warn("CreateDay: validation failed: %v", err)
		return nil, err
	}

	day := &domain.AvailableDay{
		Date:            domain.WallDate(req.Date, s.businessTZ),
		AppointmentType: req.AppointmentType,
		MaxCapacity:     maxCapacity,
		AdminNotes:      normalizeNotes(req.AdminNotes),
	}

	created, err := s.dayRepo.Create(ctx, day)
	if err != nil {
		if errors.Is(err, availabledayRepo.ErrDayAlreadyConfigured) {
			s.logger.Warn("CreateDay: day %s already configured for type=%s",
				day.Date.Format(domain.DateFormat), req.AppointmentType)
			return nil, ErrDayAlreadyConfigured
		}
		s.logger.Error("CreateDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDay: successfully created day id=%d", created.ID)
	return models.FromDomainDay(created), nil
}

// GetDay returns one capacity record by id
func (s *Service) GetDay(ctx context.Context, id int64) (*models.AvailableDayResponse, error) {
	day, err := s.dayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, availabledayRepo.ErrDayNotFound) {
			s.logger.Warn("GetDay: day id=%d not found", id)
			return nil, ErrDayNotFound
		}
		s.logger.Error("GetDay: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDay - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDay(day), nil
}

// UpdateDay adjusts the capacity or notes of a configured day. Raising
// the cap of a full day immediately re-opens it for bookings; lowering
// it below the booked count only blocks new admissions, existing
// appointments stay.
func (s *Service) UpdateDay(ctx context.Context, id int64, req *models.UpdateDayRequest) (*models.AvailableDayResponse, error) {
	s.logger.Info("UpdateDay: id=%d", id)

	if req.MaxCapacity == nil && req.AdminNotes == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.MaxCapacity != nil {
		if err := validateCapacity(*req.MaxCapacity); err != nil {
			s.logger.Warn("UpdateDay: validation failed: %v", err)
			return nil, err
		}
	}
	if err := validateNotes(req.AdminNotes); err != nil {
		s.logger.Warn("UpdateDay: validation failed: %v", err)
		return nil, err
	}

	day, err := s.dayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, availabledayRepo.ErrDayNotFound) {
			s.logger.Warn("UpdateDay: day id=%d not found", id)
			return nil, ErrDayNotFound
		}
		s.logger.Error("UpdateDay: failed to get day id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	if req.MaxCapacity != nil {
		day.MaxCapacity = *req.MaxCapacity
	}
	if req.AdminNotes != nil {
		day.AdminNotes = normalizeNotes(req.AdminNotes)
	}

	if err := s.dayRepo.Update(ctx, day); err != nil {
		if errors.Is(err, availabledayRepo.ErrDayNotFound) {
			return nil, ErrDayNotFound
		}
		s.logger.Error("UpdateDay: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	updated, err := s.dayRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateDay: failed to reload day id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateDay: successfully updated day id=%d", id)
	return models.FromDomainDay(updated), nil
}

// DeleteDay removes a capacity record. Existing appointments on the day
// are untouched, the day simply stops accepting new bookings.
func (s *Service) DeleteDay(ctx context.Context, id int64) error {
	s.logger.Info("DeleteDay: id=%d", id)

	if err := s.dayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabledayRepo.ErrDayNotFound) {
			s.logger.Warn("DeleteDay: day id=%d not found", id)
			return ErrDayNotFound
		}
		s.logger.Error("DeleteDay: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDay: successfully deleted day id=%d", id)
	return nil
}

// Validation helpers

func validateCapacity(maxCapacity int) error {
	if maxCapacity < domain.MinMaxCapacity || maxCapacity > domain.MaxMaxCapacity {
		return fmt.Errorf("%w: maxCapacity must be between %d and %d",
			ErrInvalidInput, domain.MinMaxCapacity, domain.MaxMaxCapacity)
	}
	return nil
}

func validateNotes(notes *string) error {
	if notes != nil && len(*notes) > domain.MaxAdminNotesLength {
		return fmt.Errorf("%w: adminNotes exceeds %d characters", ErrInvalidInput, domain.MaxAdminNotesLength)
	}
	return nil
}

// normalizeNotes trims the notes and maps an empty string to NULL
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validateMonthRequest(req *models.MonthRequest) error {
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month %d is out of range", ErrInvalidInput, req.Month)
	}
	if !req.AppointmentType.Valid() {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.AppointmentType)
	}
	return nil
}
