package gcaltoken

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/habitatum/HBT-AppointmentService/pkg/dbmetrics"
	"github.com/habitatum/HBT-AppointmentService/pkg/psqlbuilder"
)

// Token stored OAuth2 credentials for the administrator's Google
// Calendar account. Provisioned out of band; this service only reads it
// and refreshes the access token.
type Token struct {
	ID           int64
	AccountEmail string
	AccessToken  string
	RefreshToken string
	TokenURI     string
	ClientID     string
	ClientSecret string
	Scopes       string
}

// Repository repository for the stored Google API token
type Repository struct {
	db DBExecutor
}

// NewRepository creates a token repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the first stored token (single-tenant: one admin account)
func (r *Repository) Get(ctx context.Context) (*Token, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"account_email",
		"access_token",
		"refresh_token",
		"token_uri",
		"client_id",
		"client_secret",
		"scopes",
	).
		From("google_api_tokens").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var token Token
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&token.ID,
		&token.AccountEmail,
		&token.AccessToken,
		&token.RefreshToken,
		&token.TokenURI,
		&token.ClientID,
		&token.ClientSecret,
		&token.Scopes,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan token: %v", ErrScanRow, err)
	}

	return &token, nil
}

// UpdateAccessToken stores a refreshed access token
func (r *Repository) UpdateAccessToken(ctx context.Context, id int64, accessToken string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("google_api_tokens").
		Set("access_token", accessToken).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAccessToken - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAccessToken - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAccessToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}
