package storage

import (
	"context"
	"database/sql"
	"fmt"

	"savr/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// profileRowID pins the single restaurant_profile row.
const profileRowID = 1

func (r *PostgresRepository) GetProfile(ctx context.Context) (domain.RestaurantProfile, error) {
	var p domain.RestaurantProfile
	err := r.DB.QueryRowContext(ctx, `
		SELECT store_name, owner_name, phone, email, address, cuisine, open_time_epoch, close_time_epoch
		FROM restaurant_profile
		WHERE id = $1`, profileRowID).
		Scan(&p.StoreName, &p.OwnerName, &p.Phone, &p.Email, &p.Address, &p.Cuisine, &p.OpenTimeEpoch, &p.CloseTimeEpoch)
	if err != nil {
		return domain.RestaurantProfile{}, err
	}
	return p, nil
}

func (r *PostgresRepository) SaveProfile(ctx context.Context, p domain.RestaurantProfile) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO restaurant_profile (id, store_name, owner_name, phone, email, address, cuisine, open_time_epoch, close_time_epoch)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			owner_name = EXCLUDED.owner_name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			cuisine = EXCLUDED.cuisine,
			open_time_epoch = EXCLUDED.open_time_epoch,
			close_time_epoch = EXCLUDED.close_time_epoch`,
		profileRowID, p.StoreName, p.OwnerName, p.Phone, p.Email, p.Address, p.Cuisine, p.OpenTimeEpoch, p.CloseTimeEpoch)
	return err
}

// ListMenu returns the menu newest first. Replacing an item keeps its place.
func (r *PostgresRepository) ListMenu(ctx context.Context) ([]domain.FoodItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, actual_price, discounted_price, COALESCE(image_url, ''), available_from, quantity
		FROM menu_items
		ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.FoodItem, 0)
	for rows.Next() {
		var (
			item          domain.FoodItem
			availableFrom sql.NullInt64
			quantity      sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.ActualPrice, &item.DiscountedPrice,
			&item.ImageURL, &availableFrom, &quantity); err != nil {
			return nil, err
		}
		if availableFrom.Valid {
			v := availableFrom.Int64
			item.AvailableFrom = &v
		}
		if quantity.Valid {
			v := int(quantity.Int64)
			item.Quantity = &v
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) InsertMenuItem(ctx context.Context, item domain.FoodItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, name, description, actual_price, discounted_price, image_url, available_from, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.Description, item.ActualPrice, item.DiscountedPrice, item.ImageURL,
		nullInt64(item.AvailableFrom), nullInt(item.Quantity))
	return err
}

func (r *PostgresRepository) ReplaceMenuItem(ctx context.Context, item domain.FoodItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, actual_price = $3, discounted_price = $4, image_url = $5, available_from = $6, quantity = $7
		WHERE id = $8`,
		item.Name, item.Description, item.ActualPrice, item.DiscountedPrice, item.ImageURL,
		nullInt64(item.AvailableFrom), nullInt(item.Quantity), item.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			actual_price NUMERIC(12, 2) NOT NULL,
			discounted_price NUMERIC(12, 2) NOT NULL,
			image_url TEXT,
			available_from BIGINT,
			quantity INT
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_profile (
			id INT PRIMARY KEY,
			store_name TEXT NOT NULL,
			owner_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			address TEXT NOT NULL,
			cuisine TEXT NOT NULL,
			open_time_epoch BIGINT NOT NULL,
			close_time_epoch BIGINT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// Seed loads the fixture profile and menu into empty tables. The menu is
// inserted oldest first so ListMenu returns it in the given order.
func (r *PostgresRepository) Seed(ctx context.Context, profile domain.RestaurantProfile, menu []domain.FoodItem) error {
	var profiles int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurant_profile").Scan(&profiles); err != nil {
		return err
	}
	if profiles == 0 {
		if err := r.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
	}

	var items int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&items); err != nil {
		return err
	}
	if items > 0 {
		return nil
	}
	for i := len(menu) - 1; i >= 0; i-- {
		if err := r.InsertMenuItem(ctx, menu[i]); err != nil {
			return fmt.Errorf("seed menu item %s: %w", menu[i].ID, err)
		}
	}
	return nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
