package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	availabledayRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/availableday"
	propertyRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/property"
)

// UseCase use case for admitting and creating a viewing appointment.
//
// The capacity check and the insert run inside one serializable
// transaction, so two concurrent bookings for the last slot of a day
// cannot both be admitted. Notification and calendar sync happen after
// commit and are best effort: their failure never rolls back a booking.
type UseCase struct {
	apptRepo     AppointmentRepository
	dayRepo      AvailableDayRepository
	propertyRepo PropertyRepository
	calendar     CalendarClient
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	businessTZ   *time.Location
	logger       Logger
}

// NewUseCase creates the use case. calendar and notifier may be nil when
// the respective integration is disabled in config.
func NewUseCase(
	apptRepo AppointmentRepository,
	dayRepo AvailableDayRepository,
	propertyRepo PropertyRepository,
	calendar CalendarClient,
	notifier Notifier,
	txManager TransactionManager,
	businessTZ *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		dayRepo:      dayRepo,
		propertyRepo: propertyRepo,
		calendar:     calendar,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		businessTZ:   businessTZ,
		logger:       logger,
	}
}

// Execute runs the booking admission and creates the appointment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: property=%d, type=%s, date=%s, time=%s",
		req.PropertyID, req.AppointmentType, req.VisitDate.Format(domain.DateFormat), req.VisitTime)

	// 1. Validate client data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Normalize the requested day to the business timezone. VisitDate
	// is a wall date (form input parses as midnight UTC), so the
	// calendar fields are taken as-is instead of converting the instant.
	now := uc.timeProvider.Now()
	day := domain.WallDate(req.VisitDate, uc.businessTZ)

	// 3. Past days are never bookable, configured or not
	if domain.IsPastDay(day, now, uc.businessTZ) {
		uc.logger.Warn("CreateAppointment: requested day %s is in the past", day.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. The property must exist and be publicly visible
	prop, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CreateAppointment: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}
	if !prop.IsVisible {
		uc.logger.Warn("CreateAppointment: property id=%d is not visible", req.PropertyID)
		return nil, ErrPropertyNotFound
	}

	scheduledAt, err := req.VisitTime.On(day, uc.businessTZ)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compose visit time: %v", ErrInternal, err)
	}

	var result *domain.Appointment
	var remaining int

	// 5. Capacity check and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. The day must have been opened by the administrator for
		// this appointment type
		availableDay, err := uc.dayRepo.GetByDateAndType(txCtx, day, req.AppointmentType)
		if err != nil {
			if errors.Is(err, availabledayRepo.ErrDayNotFound) {
				uc.logger.Warn("CreateAppointment: day %s not configured for type=%s",
					day.Format(domain.DateFormat), req.AppointmentType)
				return ErrDayNotConfigured
			}
			uc.logger.Error("CreateAppointment: failed to get available day: %v", err)
			return fmt.Errorf("%w: failed to get available day: %v", ErrInternal, err)
		}

		// 5.2. Count existing appointments against the cap
		booked, err := uc.apptRepo.CountForDay(txCtx, day, req.AppointmentType)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count appointments: %v", err)
			return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
		}

		if booked >= availableDay.MaxCapacity {
			uc.logger.Warn("CreateAppointment: day %s full for type=%s, %d/%d booked",
				day.Format(domain.DateFormat), req.AppointmentType, booked, availableDay.MaxCapacity)
			return fmt.Errorf("%w: %d/%d", ErrDayFull, booked, availableDay.MaxCapacity)
		}

		uc.logger.Info("CreateAppointment: day %s has capacity, %d/%d booked",
			day.Format(domain.DateFormat), booked, availableDay.MaxCapacity)

		// 5.3. Admit: persist the appointment
		appt := &domain.Appointment{
			PropertyID:      prop.ID,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			ScheduledAt:     scheduledAt,
			AppointmentType: req.AppointmentType,
			MonthlyIncome:   req.MonthlyIncome,
			CreditType:      req.CreditType,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		remaining = availableDay.RemainingCapacity(booked + 1)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 6. Fire-and-forget side effects
	uc.notifyAdmin(result, prop)
	uc.syncCalendar(ctx, result, prop)

	return &Response{
		ID:                result.ID,
		PropertyID:        result.PropertyID,
		PropertyName:      prop.Name,
		ClientName:        result.ClientName,
		ClientEmail:       result.ClientEmail,
		ClientPhone:       result.ClientPhone,
		ScheduledAt:       result.ScheduledAt,
		AppointmentType:   result.AppointmentType,
		MonthlyIncome:     result.MonthlyIncome,
		CreditType:        result.CreditType,
		GoogleEventID:     result.GoogleEventID,
		RemainingCapacity: remaining,
		CreatedAt:         result.CreatedAt,
	}, nil
}

// notifyAdmin sends the admin email; failures are logged and swallowed
func (uc *UseCase) notifyAdmin(appt *domain.Appointment, prop *domain.Property) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.SendNewAppointmentNotification(appt, prop); err != nil {
		uc.logger.Error("CreateAppointment: notification email failed for appointment id=%d: %v", appt.ID, err)
	}
}

// syncCalendar creates the external calendar event and attaches its id;
// failures are logged and swallowed, the appointment stays valid
func (uc *UseCase) syncCalendar(ctx context.Context, appt *domain.Appointment, prop *domain.Property) {
	if uc.calendar == nil {
		return
	}

	eventID, err := uc.calendar.CreateVisitEvent(ctx, appt, prop)
	if err != nil {
		uc.logger.Error("CreateAppointment: calendar event failed for appointment id=%d: %v", appt.ID, err)
		return
	}

	if err := uc.apptRepo.SetGoogleEventID(ctx, appt.ID, eventID); err != nil {
		uc.logger.Error("CreateAppointment: failed to attach calendar event id=%s to appointment id=%d: %v",
			eventID, appt.ID, err)
		return
	}
	appt.GoogleEventID = &eventID
}
