package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/internal/infra/storage/gcaltoken"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// TokenStore provides the stored OAuth2 credentials and persists
// refreshed access tokens
type TokenStore interface {
	Get(ctx context.Context) (*gcaltoken.Token, error)
	UpdateAccessToken(ctx context.Context, id int64, accessToken string) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client Google Calendar REST client. Talks to the events endpoint
// directly with the stored bearer token; on a 401 it refreshes the
// access token once through the stored refresh token and retries.
type Client struct {
	baseURL    string
	calendarID string
	httpClient *http.Client
	tokens     TokenStore
	businessTZ *time.Location
	log        Logger
}

// NewClient creates a calendar client. calendarID is usually "primary".
func NewClient(calendarID string, timeout time.Duration, tokens TokenStore, businessTZ *time.Location, log Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		calendarID: calendarID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens:     tokens,
		businessTZ: businessTZ,
		log:        log,
	}
}

// CreateVisitEvent creates a calendar event for an admitted appointment
// and returns the event id. Priority visits get the longer duration and
// the red color so the administrator can prepare the credit advisory.
func (c *Client) CreateVisitEvent(ctx context.Context, appt *domain.Appointment, prop *domain.Property) (string, error) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		if errors.Is(err, gcaltoken.ErrTokenNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("%w: failed to load token: %v", ErrInternal, err)
	}

	start := appt.ScheduledAt.In(c.businessTZ)
	end := start.Add(time.Duration(appt.VisitDurationMinutes()) * time.Minute)

	event := eventRequest{
		Summary:     buildEventTitle(appt, prop),
		Description: buildEventDescription(appt, prop),
		Location:    prop.Location,
		Start: eventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: c.businessTZ.String(),
		},
		End: eventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: c.businessTZ.String(),
		},
		Attendees: []eventAttendee{
			{Email: appt.ClientEmail},
		},
		Reminders: eventReminders{
			UseDefault: false,
			Overrides: []eventReminderOverride{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
		},
		ColorID: colorNormal,
	}
	if appt.IsPriority() {
		event.ColorID = colorPriority
	}

	created, err := c.insertEvent(ctx, token, &event)
	if err != nil {
		return "", err
	}

	c.log.Info("Calendar event created for appointment id=%d: %s", appt.ID, created.HTMLLink)
	return created.ID, nil
}

// DeleteEvent removes a calendar event. A 404/410 from the API is
// treated as already deleted.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		if errors.Is(err, gcaltoken.ErrTokenNotFound) {
			return ErrNoToken
		}
		return fmt.Errorf("%w: failed to load token: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	resp, err := c.doAuthorized(ctx, token, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK, http.StatusNotFound, http.StatusGone:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

func (c *Client) insertEvent(ctx context.Context, token *gcaltoken.Token, event *eventRequest) (*eventResponse, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))

	resp, err := c.doAuthorized(ctx, token, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// keep going
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}

// doAuthorized performs the request with the bearer token, refreshing
// the access token and retrying once when Google rejects it
func (c *Client) doAuthorized(ctx context.Context, token *gcaltoken.Token, method, endpoint string, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, token.AccessToken, method, endpoint, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	c.log.Warn("Calendar access token rejected, refreshing")
	accessToken, err := c.refreshAccessToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, accessToken, method, endpoint, payload)
}

func (c *Client) do(ctx context.Context, accessToken, method, endpoint string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token and persists it
func (c *Client) refreshAccessToken(ctx context.Context, token *gcaltoken.Token) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", token.RefreshToken)
	form.Set("client_id", token.ClientID)
	form.Set("client_secret", token.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, token.TokenURI,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create refresh request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to refresh token: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token refresh failed with status %d: %s", ErrUnauthorized, resp.StatusCode, string(body))
	}

	var refreshed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&refreshed); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %v", ErrInvalidResponse, err)
	}

	if err := c.tokens.UpdateAccessToken(ctx, token.ID, refreshed.AccessToken); err != nil {
		// The new token still works for this request; losing the update
		// only costs an extra refresh next time.
		c.log.Warn("Failed to persist refreshed access token: %v", err)
	}

	return refreshed.AccessToken, nil
}

func buildEventTitle(appt *domain.Appointment, prop *domain.Property) string {
	if appt.IsPriority() {
		return fmt.Sprintf("Cita Prioritaria - %s - %s", appt.ClientName, prop.Name)
	}
	return fmt.Sprintf("Cita - %s - %s", appt.ClientName, prop.Name)
}

func buildEventDescription(appt *domain.Appointment, prop *domain.Property) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cliente: %s\n", appt.ClientName)
	fmt.Fprintf(&b, "Email: %s\n", appt.ClientEmail)
	fmt.Fprintf(&b, "Teléfono: %s\n\n", appt.ClientPhone)
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
