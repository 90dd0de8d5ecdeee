package order

import (
	"database/sql"
	"encoding/json"

	"food-order-backend/internal/cart"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `order_id, order_ref, customer_id, customer_name, customer_email, customer_phone,
		hotel_owner_id, restaurant_name, items, total, status, order_time, estimated_time,
		delivery_address, payment_method, special_instructions`

func (r *PostgresRepository) Create(o Order) (Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders (order_ref, customer_id, customer_name, customer_email, customer_phone,
			hotel_owner_id, restaurant_name, items, total, status, order_time, estimated_time,
			delivery_address, payment_method, special_instructions)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING order_id`,
		o.Ref, o.CustomerID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.HotelOwnerID, o.RestaurantName, itemsJSON, o.Total, string(o.Status), o.OrderTime, o.EstimatedTime,
		o.DeliveryAddress, o.PaymentMethod, o.SpecialInstructions,
	).Scan(&o.ID)
	if err != nil {
		return Order{}, err
	}

	return o, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id)
	return scanOrder(row)
}

func (r *PostgresRepository) ListByCustomer(customerID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders
		WHERE customer_id = $1 ORDER BY order_id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresRepository) ListByOwner(ownerID int, status Status) ([]Order, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.Query(`SELECT `+orderColumns+` FROM orders
			WHERE hotel_owner_id = $1 ORDER BY order_id DESC`, ownerID)
	} else {
		rows, err = r.db.Query(`SELECT `+orderColumns+` FROM orders
			WHERE hotel_owner_id = $1 AND status = $2 ORDER BY order_id DESC`, ownerID, string(status))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresRepository) UpdateStatus(id int, status Status) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $1 WHERE order_id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o         Order
		itemsJSON []byte
		status    string
	)

	err := row.Scan(&o.ID, &o.Ref, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.HotelOwnerID, &o.RestaurantName, &itemsJSON, &o.Total, &status, &o.OrderTime, &o.EstimatedTime,
		&o.DeliveryAddress, &o.PaymentMethod, &o.SpecialInstructions)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	o.Status = Status(status)
	o.Items = make([]cart.Line, 0)
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return Order{}, err
	}
	return o, nil
}

func collectOrders(rows *sql.Rows) ([]Order, error) {
	orders := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
