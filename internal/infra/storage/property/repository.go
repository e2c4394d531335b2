package property

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/habitatum/HBT-AppointmentService/internal/domain"
	"github.com/habitatum/HBT-AppointmentService/pkg/dbmetrics"
	"github.com/habitatum/HBT-AppointmentService/pkg/psqlbuilder"
)

// Repository repository for the property catalog
type Repository struct {
	db DBExecutor
}

// NewRepository creates a property repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a property and its gallery images
func (r *Repository) Create(ctx context.Context, prop *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("properties").
		Columns(
			"name",
			"description",
			"square_meters",
			"property_type",
			"location",
			"price",
			"main_image_url",
			"is_visible",
		).
		Values(
			prop.Name,
			prop.Description,
			prop.SquareMeters,
			prop.PropertyType,
			prop.Location,
			prop.Price,
			prop.MainImageURL,
			prop.IsVisible,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prop.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	prop.CreatedAt = createdAt.Time
	prop.UpdatedAt = updatedAt.Time

	if err := r.insertImages(ctx, prop.ID, prop.Images); err != nil {
		return nil, err
	}

	return prop, nil
}

// GetByID fetches a property with its gallery images
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectProperties().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	prop, err := scanProperty(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	images, err := r.getImages(ctx, id)
	if err != nil {
		return nil, err
	}
	prop.Images = images

	return prop, nil
}

// List lists properties, optionally filtered by type and visibility.
// Gallery images are not loaded for listings.
func (r *Repository) List(ctx context.Context, filter domain.PropertiesFilter) ([]*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectProperties().OrderBy("created_at DESC")

	if filter.VisibleOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_visible": true})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"property_type": *filter.Type})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		prop, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		properties = append(properties, prop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return properties, nil
}

// Update rewrites the editable fields of a property and replaces its images
func (r *Repository) Update(ctx context.Context, prop *domain.Property) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("properties").
		Set("name", prop.Name).
		Set("description", prop.Description).
		Set("square_meters", prop.SquareMeters).
		Set("property_type", prop.PropertyType).
		Set("location", prop.Location).
		Set("price", prop.Price).
		Set("main_image_url", prop.MainImageURL).
		Set("is_visible", prop.IsVisible).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": prop.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	if err := r.deleteImages(ctx, prop.ID); err != nil {
		return err
	}
	return r.insertImages(ctx, prop.ID, prop.Images)
}

// Delete removes a property. Its appointments and gallery images go with
// it through the ON DELETE CASCADE foreign keys.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

func (r *Repository) insertImages(ctx context.Context, propertyID int64, images []domain.PropertyImage) error {
	if len(images) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("property_images").
		Columns("property_id", "image_url", "position")

	for i, img := range images {
		insertBuilder = insertBuilder.Values(propertyID, img.ImageURL, i)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertImages - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertImages - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) deleteImages(ctx context.Context, propertyID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("property_images").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: deleteImages - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: deleteImages - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getImages(ctx context.Context, propertyID int64) ([]domain.PropertyImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "property_id", "image_url", "position").
		From("property_images").
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getImages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getImages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]domain.PropertyImage, 0)
	for rows.Next() {
		var img domain.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.ImageURL, &img.Position); err != nil {
			return nil, fmt.Errorf("%w: getImages - scan row: %v", ErrScanRow, err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getImages - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

func selectProperties() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"description",
		"square_meters",
		"property_type",
		"location",
		"price",
		"main_image_url",
		"is_visible",
		"created_at",
		"updated_at",
	).From("properties")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var prop domain.Property
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&prop.ID,
		&prop.Name,
		&prop.Description,
		&prop.SquareMeters,
		&prop.PropertyType,
		&prop.Location,
		&prop.Price,
		&prop.MainImageURL,
		&prop.IsVisible,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	prop.CreatedAt = createdAt.Time
	prop.UpdatedAt = updatedAt.Time
	return &prop, nil
}
