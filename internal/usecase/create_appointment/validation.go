package create_appointment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest validates the booking request
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if !emailPattern.MatchString(req.ClientEmail) {
		return fmt.Errorf("%w: invalid clientEmail", ErrInvalidInput)
	}

	if err := validatePhone(req.ClientPhone); err != nil {
		return err
	}

	if req.VisitDate.IsZero() {
		return fmt.Errorf("%w: visitDate is required", ErrInvalidInput)
	}

	if req.VisitTime.IsZero() {
		return fmt.Errorf("%w: visitTime is required", ErrInvalidInput)
	}
	if err := req.VisitTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid visitTime format: %v", ErrInvalidInput, err)
	}

	if !req.AppointmentType.Valid() {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.AppointmentType)
	}

	return validateCreditData(req)
}

// validatePhone checks that the phone contains only digits (after
// stripping spaces and dashes) and has at least the minimum length
func validatePhone(phone string) error {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)

	if cleaned == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: clientPhone must contain only digits", ErrInvalidInput)
		}
	}
	if len(cleaned) < domain.MinClientPhoneDigits {
		return fmt.Errorf("%w: clientPhone must have at least %d digits", ErrInvalidInput, domain.MinClientPhoneDigits)
	}

	return nil
}

// validateCreditData enforces the priority/normal field split: priority
// appointments must carry income and credit type, normal ones must not
func validateCreditData(req *Request) error {
	if req.AppointmentType == domain.TypePriority {
		if req.MonthlyIncome == nil {
			return fmt.Errorf("%w: monthlyIncome is required for priority appointments", ErrInvalidInput)
		}
		if *req.MonthlyIncome <= 0 {
			return fmt.Errorf("%w: monthlyIncome must be greater than zero", ErrInvalidInput)
		}
		if req.CreditType == nil {
			return fmt.Errorf("%w: creditType is required for priority appointments", ErrInvalidInput)
		}
		if !req.CreditType.Valid() {
			return fmt.Errorf("%w: unknown credit type %q", ErrInvalidInput, *req.CreditType)
		}
		return nil
	}

	if req.MonthlyIncome != nil || req.CreditType != nil {
		return fmt.Errorf("%w: credit advisory data is only allowed for priority appointments", ErrInvalidInput)
	}

	return nil
}
