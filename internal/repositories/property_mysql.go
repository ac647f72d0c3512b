package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"estateBack/internal/models"
)

// PropertyMySQLRepository persists listings in MySQL. Images and amenities
// are stored as JSON-encoded text columns; seq preserves insertion order.
type PropertyMySQLRepository struct {
	DB *sql.DB
}

func (r *PropertyMySQLRepository) GetProperties(ctx context.Context) ([]models.Property, error) {
	query := `SELECT id, title, description, city, area, property_type, price, bedrooms, bathrooms,
	                 sqft, images, amenities, latitude, longitude, status, featured, owner_id
	          FROM properties ORDER BY seq`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}

func (r *PropertyMySQLRepository) GetPropertyByID(ctx context.Context, id string) (models.Property, error) {
	query := `SELECT id, title, description, city, area, property_type, price, bedrooms, bathrooms,
	                 sqft, images, amenities, latitude, longitude, status, featured, owner_id
	          FROM properties WHERE id = ?`
	property, err := scanProperty(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return property, err
}

func (r *PropertyMySQLRepository) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	property.ID = uuid.NewString()
	images, err := json.Marshal(property.Images)
	if err != nil {
		return models.Property{}, err
	}
	amenities, err := json.Marshal(property.Amenities)
	if err != nil {
		return models.Property{}, err
	}
	query := `INSERT INTO properties (id, title, description, city, area, property_type, price, bedrooms,
	                                  bathrooms, sqft, images, amenities, latitude, longitude, status, featured, owner_id)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.DB.ExecContext(ctx, query,
		property.ID, property.Title, property.Description, property.City, property.Area,
		property.PropertyType, property.Price, property.Bedrooms, property.Bathrooms, property.Sqft,
		string(images), string(amenities), property.Latitude, property.Longitude,
		property.Status, property.Featured, property.OwnerID)
	if err != nil {
		return models.Property{}, err
	}
	return property, nil
}

func (r *PropertyMySQLRepository) UpdateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	images, err := json.Marshal(property.Images)
	if err != nil {
		return models.Property{}, err
	}
	amenities, err := json.Marshal(property.Amenities)
	if err != nil {
		return models.Property{}, err
	}
	query := `UPDATE properties SET title = ?, description = ?, city = ?, area = ?, property_type = ?,
	                 price = ?, bedrooms = ?, bathrooms = ?, sqft = ?, images = ?, amenities = ?,
	                 latitude = ?, longitude = ?, status = ?, featured = ?, owner_id = ?
	          WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query,
		property.Title, property.Description, property.City, property.Area, property.PropertyType,
		property.Price, property.Bedrooms, property.Bathrooms, property.Sqft,
		string(images), string(amenities), property.Latitude, property.Longitude,
		property.Status, property.Featured, property.OwnerID, property.ID)
	if err != nil {
		return models.Property{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Property{}, err
	}
	if affected == 0 {
		if _, err := r.GetPropertyByID(ctx, property.ID); err != nil {
			return models.Property{}, err
		}
	}
	return property, nil
}

func (r *PropertyMySQLRepository) DeleteProperty(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (models.Property, error) {
	var property models.Property
	var images, amenities string
	err := row.Scan(&property.ID, &property.Title, &property.Description, &property.City,
		&property.Area, &property.PropertyType, &property.Price, &property.Bedrooms,
		&property.Bathrooms, &property.Sqft, &images, &amenities,
		&property.Latitude, &property.Longitude, &property.Status, &property.Featured, &property.OwnerID)
	if err != nil {
		return models.Property{}, err
	}
	if err := json.Unmarshal([]byte(images), &property.Images); err != nil {
		return models.Property{}, err
	}
	if err := json.Unmarshal([]byte(amenities), &property.Amenities); err != nil {
		return models.Property{}, err
	}
	return property, nil
}
