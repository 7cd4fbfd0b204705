package storage

import (
	"context"
	"database/sql"
	"fmt"

	"savr/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) SaveOrder(ctx context.Context, sessionID string, order domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, session_id, restaurant_id, restaurant_name, status, total_amount, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, order.ID, sessionID, order.RestaurantID, order.RestaurantName, string(order.Status),
		order.TotalAmount, order.OrderedAtEpoch); err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}

	for position, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (session_id, order_id, position, item_id, food_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, sessionID, order.ID, position, item.ID, item.FoodID, item.Name, item.UnitPrice, item.Quantity); err != nil {
			return fmt.Errorf("insert order item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, sessionID, orderID string, status domain.OrderStatus, completedAtEpoch *int64) error {
	var completedAt sql.NullInt64
	if completedAtEpoch != nil {
		completedAt = sql.NullInt64{Int64: *completedAtEpoch, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1, completed_at = COALESCE($2, completed_at) WHERE session_id = $3 AND id = $4",
		string(status), completedAt, sessionID, orderID)
	return err
}

func (r *PostgresRepository) SaveRating(ctx context.Context, sessionID, orderID string, rating int) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET rating = $1 WHERE session_id = $2 AND id = $3",
		rating, sessionID, orderID)
	return err
}

// ListOrders returns a session's orders most recent first.
func (r *PostgresRepository) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, restaurant_name, status, total_amount, ordered_at, completed_at, rating
		FROM orders
		WHERE session_id = $1
		ORDER BY ordered_at DESC, seq DESC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	index := make(map[string]int)
	for rows.Next() {
		var (
			order       domain.Order
			status      string
			completedAt sql.NullInt64
			rating      sql.NullInt64
		)
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.RestaurantName, &status,
			&order.TotalAmount, &order.OrderedAtEpoch, &completedAt, &rating); err != nil {
			return nil, err
		}
		parsed, err := domain.ParseOrderStatus(status)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", order.ID, err)
		}
		order.Status = parsed
		if completedAt.Valid {
			value := completedAt.Int64
			order.CompletedAtEpoch = &value
		}
		if rating.Valid {
			value := int(rating.Int64)
			order.Rating = &value
		}
		index[order.ID] = len(orders)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, item_id, food_id, name, unit_price, quantity
		FROM order_items
		WHERE session_id = $1
		ORDER BY order_id, position
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID string
			item    domain.CartItem
		)
		if err := itemRows.Scan(&orderID, &item.ID, &item.FoodID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		idx, ok := index[orderID]
		if !ok {
			continue
		}
		item.RestaurantID = orders[idx].RestaurantID
		item.RestaurantName = orders[idx].RestaurantName
		orders[idx].Items = append(orders[idx].Items, item)
	}
	return orders, itemRows.Err()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, sessionID, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE session_id = $2 AND id = $3",
		qr, sessionID, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, sessionID, orderID string) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE session_id = $1 AND id = $2",
		sessionID, orderID).Scan(&qr)
	if err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			seq BIGSERIAL,
			id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			restaurant_id TEXT NOT NULL,
			restaurant_name TEXT NOT NULL,
			status TEXT NOT NULL,
			total_amount NUMERIC(12, 2) NOT NULL,
			ordered_at BIGINT NOT NULL,
			completed_at BIGINT,
			rating SMALLINT,
			qr_code BYTEA,
			PRIMARY KEY (session_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			session_id TEXT NOT NULL,
			order_id TEXT NOT NULL,
			position INT NOT NULL,
			item_id TEXT NOT NULL,
			food_id TEXT NOT NULL,
			name TEXT NOT NULL,
			unit_price NUMERIC(12, 2) NOT NULL,
			quantity INT NOT NULL,
			PRIMARY KEY (session_id, order_id, position),
			FOREIGN KEY (session_id, order_id) REFERENCES orders (session_id, id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
