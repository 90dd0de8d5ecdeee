package restaurant

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const profileColumns = `hotel_owner_id, name, description, address, phone, cuisine_type, opening_hours`

func (r *PostgresRepository) Get(ownerID int) (Profile, error) {
	var (
		p            Profile
		description  sql.NullString
		address      sql.NullString
		phone        sql.NullString
		cuisineType  sql.NullString
		openingHours sql.NullString
	)

	err := r.db.QueryRow(`SELECT `+profileColumns+` FROM restaurant_profiles WHERE hotel_owner_id = $1`, ownerID).
		Scan(&p.HotelOwnerID, &p.Name, &description, &address, &phone, &cuisineType, &openingHours)
	if err == sql.ErrNoRows {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}

	p.Description = description.String
	p.Address = address.String
	p.Phone = phone.String
	p.CuisineType = cuisineType.String
	p.OpeningHours = openingHours.String
	return p, nil
}

func (r *PostgresRepository) Save(profile Profile) (Profile, error) {
	_, err := r.db.Exec(`INSERT INTO restaurant_profiles (hotel_owner_id, name, description, address, phone, cuisine_type, opening_hours)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (hotel_owner_id) DO UPDATE
		SET name = $2, description = $3, address = $4, phone = $5, cuisine_type = $6, opening_hours = $7`,
		profile.HotelOwnerID, profile.Name, profile.Description, profile.Address,
		profile.Phone, profile.CuisineType, profile.OpeningHours)
	if err != nil {
		return Profile{}, err
	}
	return profile, nil
}
