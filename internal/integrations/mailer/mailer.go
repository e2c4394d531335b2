package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
)

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer sends the plain-text admin notification for new appointments.
// Delivery is best effort: callers log and swallow failures, a lost
// email never rolls back a booking.
type Mailer struct {
	host       string
	port       int
	user       string
	from       string
	adminEmail string
	log        Logger
}

// NewMailer creates a mailer. The SMTP password is read from the
// SMTP_PASSWORD environment variable at send time.
func NewMailer(host string, port int, user, from, adminEmail string, log Logger) *Mailer {
	return &Mailer{
		host:       host,
		port:       port,
		user:       user,
		from:       from,
		adminEmail: adminEmail,
		log:        log,
	}
}

// SendNewAppointmentNotification emails the administrator about a newly
// admitted appointment. Priority appointments include the financial block.
func (m *Mailer) SendNewAppointmentNotification(appt *domain.Appointment, prop *domain.Property) error {
	subject := buildSubject(appt)
	body := buildBody(appt, prop)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.from, m.adminEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, os.Getenv("SMTP_PASSWORD"), m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{m.adminEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m.log.Info("Notification email sent for appointment id=%d", appt.ID)
	return nil
}

func buildSubject(appt *domain.Appointment) string {
	if appt.IsPriority() {
		return fmt.Sprintf("Nueva Cita Prioritaria - %s", appt.ClientName)
	}
	return fmt.Sprintf("Nueva Cita Normal - %s", appt.ClientName)
}

func buildBody(appt *domain.Appointment, prop *domain.Property) string {
	var b strings.Builder

	b.WriteString("Nueva cita agendada en Habitatum\n\n")

	tipo := "Normal"
	if appt.IsPriority() {
		tipo = "Prioritaria"
	}
	fmt.Fprintf(&b, "Tipo: Cita %s\n", tipo)
	fmt.Fprintf(&b, "Cliente: %s\n", appt.ClientName)
	fmt.Fprintf(&b, "Email: %s\n", appt.ClientEmail)
	fmt.Fprintf(&b, "Teléfono: %s\n", appt.ClientPhone)
	fmt.Fprintf(&b, "Fecha: %s hrs\n\n", appt.ScheduledAt.Format("02/01/2006 a las 15:04"))

	fmt.Fprintf(&b, "Propiedad: %s\n", prop.Name)
	fmt.Fprintf(&b, "Ubicación: %s\n", prop.Location)

	if appt.IsPriority() {
		b.WriteString("\nInformación Financiera:\n")
		if appt.MonthlyIncome != nil {
			fmt.Fprintf(&b, "- Ingresos mensuales: $%.2f MXN\n", *appt.MonthlyIncome)
		}
		if appt.CreditType != nil {
			fmt.Fprintf(&b, "- Tipo de crédito: %s\n", *appt.CreditType)
		}
	}

	return b.String()
}
