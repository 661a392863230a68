package addressbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"checkout-address-verify/internal/models"
)

// RepositoryInterface defines storage operations for the address book.
type RepositoryInterface interface {
	Create(ctx context.Context, addr *models.SavedAddress) (*models.SavedAddress, error)
	Update(ctx context.Context, addr *models.SavedAddress) (*models.SavedAddress, error)
	Delete(ctx context.Context, id int64, userID string) error
	FindByID(ctx context.Context, id int64) (*models.SavedAddress, error)
	ListByType(ctx context.Context, userID, addressType string) ([]models.SavedAddress, error)
	FindDefault(ctx context.Context, userID, addressType string) (*models.SavedAddress, error)
	UnsetDefaults(ctx context.Context, userID, addressType string) error
	SetDefault(ctx context.Context, id int64, userID string) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const addressColumns = `id, user_id, address_type, first_name, last_name,
	address_line1, address_line2, city, postal_code, country,
	is_default, address_name, created_at, updated_at`

func scanAddress(row pgx.Row) (*models.SavedAddress, error) {
	addr := &models.SavedAddress{}
	err := row.Scan(
		&addr.ID, &addr.UserID, &addr.AddressType, &addr.FirstName, &addr.LastName,
		&addr.AddressLine1, &addr.AddressLine2, &addr.City, &addr.PostalCode, &addr.Country,
		&addr.IsDefault, &addr.AddressName, &addr.CreatedAt, &addr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (r *Repository) Create(ctx context.Context, addr *models.SavedAddress) (*models.SavedAddress, error) {
	query := `
	INSERT INTO checkout_addresses
		(user_id, address_type, first_name, last_name, address_line1, address_line2,
		 city, postal_code, country, is_default, address_name, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	RETURNING ` + addressColumns

	created, err := scanAddress(r.db.QueryRow(ctx, query,
		addr.UserID, addr.AddressType, addr.FirstName, addr.LastName,
		addr.AddressLine1, addr.AddressLine2, addr.City, addr.PostalCode,
		addr.Country, addr.IsDefault, addr.AddressName,
	))
	if err != nil {
		return nil, fmt.Errorf("repository.Create: %w", err)
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, addr *models.SavedAddress) (*models.SavedAddress, error) {
	query := `
	UPDATE checkout_addresses
	SET first_name = $1, last_name = $2, address_line1 = $3, address_line2 = $4,
	    city = $5, postal_code = $6, country = $7, is_default = $8,
	    address_name = $9, updated_at = NOW()
	WHERE id = $10 AND user_id = $11
	RETURNING ` + addressColumns

	updated, err := scanAddress(r.db.QueryRow(ctx, query,
		addr.FirstName, addr.LastName, addr.AddressLine1, addr.AddressLine2,
		addr.City, addr.PostalCode, addr.Country, addr.IsDefault,
		addr.AddressName, addr.ID, addr.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.Update: %w", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int64, userID string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM checkout_addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.SavedAddress, error) {
	query := `SELECT ` + addressColumns + ` FROM checkout_addresses WHERE id = $1`
	addr, err := scanAddress(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return addr, nil
}

func (r *Repository) ListByType(ctx context.Context, userID, addressType string) ([]models.SavedAddress, error) {
	query := `
	SELECT ` + addressColumns + `
	FROM checkout_addresses
	WHERE user_id = $1 AND address_type = $2
	ORDER BY is_default DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, userID, addressType)
	if err != nil {
		return nil, fmt.Errorf("repository.ListByType: %w", err)
	}
	defer rows.Close()

	var addresses []models.SavedAddress
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListByType scan: %w", err)
		}
		addresses = append(addresses, *addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ListByType rows: %w", err)
	}
	return addresses, nil
}

func (r *Repository) FindDefault(ctx context.Context, userID, addressType string) (*models.SavedAddress, error) {
	query := `
	SELECT ` + addressColumns + `
	FROM checkout_addresses
	WHERE user_id = $1 AND address_type = $2 AND is_default = TRUE
	LIMIT 1`

	addr, err := scanAddress(r.db.QueryRow(ctx, query, userID, addressType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindDefault: %w", err)
	}
	return addr, nil
}

func (r *Repository) UnsetDefaults(ctx context.Context, userID, addressType string) error {
	_, err := r.db.Exec(ctx, `
	UPDATE checkout_addresses
	SET is_default = FALSE, updated_at = NOW()
	WHERE user_id = $1 AND address_type = $2 AND is_default = TRUE`, userID, addressType)
	if err != nil {
		return fmt.Errorf("repository.UnsetDefaults: %w", err)
	}
	return nil
}

func (r *Repository) SetDefault(ctx context.Context, id int64, userID string) error {
	cmdTag, err := r.db.Exec(ctx, `
	UPDATE checkout_addresses
	SET is_default = TRUE, updated_at = NOW()
	WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("repository.SetDefault: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
