package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/pkg/ptr"
	"github.com/habitatum/HBT-AppointmentService/pkg/types"
)

func baseRequest(t *testing.T) *Request {
	t.Helper()
	visitTime, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	return &Request{
		PropertyID:      1,
		ClientName:      "Ana Torres",
		ClientEmail:     "ana@example.com",
		ClientPhone:     "5512345678",
		VisitDate:       time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		VisitTime:       visitTime,
		AppointmentType: domain.TypeNormal,
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(baseRequest(t)))
}

func TestValidateRequest_MissingName(t *testing.T) {
	req := baseRequest(t)
	req.ClientName = "   "
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_BadEmail(t *testing.T) {
	for _, email := range []string{"", "ana", "ana@", "@example.com", "ana example@x.com"} {
		req := baseRequest(t)
		req.ClientEmail = email
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput, "email %q", email)
	}
}

func TestValidatePhone(t *testing.T) {
	// Spaces and dashes are stripped before the digit check
	assert.NoError(t, validatePhone("55 1234 5678"))
	assert.NoError(t, validatePhone("55-1234-5678"))
	assert.NoError(t, validatePhone("5512345678"))

	assert.ErrorIs(t, validatePhone(""), ErrInvalidInput)
	assert.ErrorIs(t, validatePhone("123456789"), ErrInvalidInput, "nine digits is too short")
	assert.ErrorIs(t, validatePhone("55telefono"), ErrInvalidInput)
	assert.ErrorIs(t, validatePhone("+525512345678"), ErrInvalidInput, "plus sign is not a digit")
}

func TestValidateRequest_UnknownType(t *testing.T) {
	req := baseRequest(t)
	req.AppointmentType = "urgente"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateCreditData_PriorityRequiresIncomeAndCredit(t *testing.T) {
	req := baseRequest(t)
	req.AppointmentType = domain.TypePriority
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req.MonthlyIncome = ptr.Ptr(30000.0)
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput, "credit type still missing")

	creditType := domain.CreditBancario
	req.CreditType = &creditType
	assert.NoError(t, validateRequest(req))
}

func TestValidateCreditData_IncomeMustBePositive(t *testing.T) {
	req := baseRequest(t)
	req.AppointmentType = domain.TypePriority
	req.MonthlyIncome = ptr.Ptr(0.0)
	creditType := domain.CreditContado
	req.CreditType = &creditType

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateCreditData_UnknownCreditType(t *testing.T) {
	req := baseRequest(t)
	req.AppointmentType = domain.TypePriority
	req.MonthlyIncome = ptr.Ptr(30000.0)
	creditType := domain.CreditType("hipotecario")
	req.CreditType = &creditType

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateCreditData_ForbiddenForNormal(t *testing.T) {
	req := baseRequest(t)
	req.MonthlyIncome = ptr.Ptr(30000.0)
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = baseRequest(t)
	creditType := domain.CreditInfonavit
	req.CreditType = &creditType
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
