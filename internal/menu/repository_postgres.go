package menu

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `item_id, name, description, price, category, is_available, image, hotel_owner_id, hotel_name, created_at`

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	row := r.db.QueryRow(`SELECT `+itemColumns+` FROM menu_items WHERE item_id = $1`, id)
	return scanItem(row)
}

func (r *PostgresRepository) Create(item Item) (Item, error) {
	err := r.db.QueryRow(`INSERT INTO menu_items (name, description, price, category, is_available, image, hotel_owner_id, hotel_name, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING item_id`,
		item.Name, item.Description, item.Price, item.Category, item.IsAvailable,
		item.Image, item.HotelOwnerID, item.HotelName, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (r *PostgresRepository) Update(id int, item Item) (Item, error) {
	res, err := r.db.Exec(`UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, is_available = $5, image = $6
		WHERE item_id = $7`,
		item.Name, item.Description, item.Price, item.Category, item.IsAvailable, item.Image, id)
	if err != nil {
		return Item{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Item{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM menu_items WHERE item_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListByOwner(ownerID int) ([]Item, error) {
	rows, err := r.db.Query(`SELECT `+itemColumns+` FROM menu_items
		WHERE hotel_owner_id = $1 ORDER BY item_id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *PostgresRepository) ListAvailableByOwner(ownerID int, categories []string) ([]Item, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(categories) == 0 {
		rows, err = r.db.Query(`SELECT `+itemColumns+` FROM menu_items
			WHERE hotel_owner_id = $1 AND is_available ORDER BY item_id`, ownerID)
	} else {
		rows, err = r.db.Query(`SELECT `+itemColumns+` FROM menu_items
			WHERE hotel_owner_id = $1 AND is_available AND category = ANY($2) ORDER BY item_id`,
			ownerID, pq.Array(categories))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *PostgresRepository) CountByOwner(ownerID int) (int, int, error) {
	var total, available int
	err := r.db.QueryRow(`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_available)
		FROM menu_items WHERE hotel_owner_id = $1`, ownerID).Scan(&total, &available)
	if err != nil {
		return 0, 0, err
	}
	return total, available, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var (
		it          Item
		description sql.NullString
		image       sql.NullString
		hotelName   sql.NullString
		createdAt   sql.NullString
	)

	err := row.Scan(&it.ID, &it.Name, &description, &it.Price, &it.Category, &it.IsAvailable,
		&image, &it.HotelOwnerID, &hotelName, &createdAt)
	if err == sql.ErrNoRows {
		return Item{}, ErrNotFound
	}
	if err != nil {
		return Item{}, err
	}

	it.Description = description.String
	it.Image = image.String
	it.HotelName = hotelName.String
	it.CreatedAt = createdAt.String
	return it, nil
}

func collectItems(rows *sql.Rows) ([]Item, error) {
	items := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
