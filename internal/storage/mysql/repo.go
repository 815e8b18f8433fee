package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"napoleon_resorts/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
func valCents(p *domain.Cents) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}
func valTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}
func valJSON(v []string) string {
	if v == nil {
		return "[]"
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertRoom(ctx context.Context, rm domain.Room) error {
	_, err := r.db.ExecContext(ctx, upsertRoomSQL,
		rm.ID,
		rm.Name,
		rm.Type,
		rm.SizeSqFt,
		rm.MaxGuests,
		int64(rm.Price),
		valCents(rm.OriginalPrice),
		valJSON(rm.Amenities),
		valJSON(rm.Features),
		rm.Description,
		rm.Availability,
	)
	return err
}

func (r *Repo) UpsertLocation(ctx context.Context, l domain.Location) error {
	_, err := r.db.ExecContext(ctx, upsertLocationSQL, l.Value, l.Label, l.State)
	return err
}

func (r *Repo) UpsertDestination(ctx context.Context, d domain.Destination) error {
	_, err := r.db.ExecContext(ctx, upsertDestinationSQL,
		d.ID,
		d.Name,
		d.State,
		d.Region,
		d.Rating,
		d.Rooms,
		d.Restaurants,
		d.Description,
		valJSON(d.Highlights),
		valJSON(d.Amenities),
		valJSON(d.NearbyAttractions),
		d.Phone,
		d.Website,
		d.Coords.Lat,
		d.Coords.Lng,
	)
	return err
}

func (r *Repo) UpsertRestaurant(ctx context.Context, rs domain.Restaurant) error {
	_, err := r.db.ExecContext(ctx, upsertRestaurantSQL,
		rs.ID,
		rs.Name,
		rs.Cuisine,
		rs.Location,
		rs.Rating,
		rs.PriceRange,
		rs.Description,
		valJSON(rs.Features),
		rs.Hours,
		rs.Dress,
		rs.Reservations,
		rs.Phone,
	)
	return err
}

func (r *Repo) UpsertReservation(ctx context.Context, rv domain.Reservation) error {
	_, err := r.db.ExecContext(ctx, upsertReservationSQL,
		rv.ID,
		string(rv.Type),
		string(rv.Status),
		rv.Property,
		rv.Location,
		valTime(rv.CheckIn),
		valTime(rv.CheckOut),
		valTime(rv.ReservationDate),
		valStr(rv.ReservationTime),
		rv.Guests,
		valStr(rv.RoomType),
		valStr(rv.TableType),
		int64(rv.TotalAmount),
		rv.ConfirmationNumber,
		valStr(rv.SpecialRequests),
		rv.CreatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(s rowScanner) (domain.Room, error) {
	var rm domain.Room
	var price int64
	var original sql.NullInt64
	var amenitiesJSON, featuresJSON []byte
	if err := s.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Type,
		&rm.SizeSqFt,
		&rm.MaxGuests,
		&price,
		&original,
		&amenitiesJSON,
		&featuresJSON,
		&rm.Description,
		&rm.Availability,
	); err != nil {
		return domain.Room{}, err
	}
	rm.Price = domain.Cents(price)
	if original.Valid {
		op := domain.Cents(original.Int64)
		rm.OriginalPrice = &op
	}
	_ = json.Unmarshal(amenitiesJSON, &rm.Amenities)
	_ = json.Unmarshal(featuresJSON, &rm.Features)
	return rm, nil
}

func (r *Repo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Room{}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}

func (r *Repo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, listLocationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Location{}
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.Value, &l.Label, &l.State); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, listDestinationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Destination{}
	for rows.Next() {
		var d domain.Destination
		var highlights, amenities, nearby []byte
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.State,
			&d.Region,
			&d.Rating,
			&d.Rooms,
			&d.Restaurants,
			&d.Description,
			&highlights,
			&amenities,
			&nearby,
			&d.Phone,
			&d.Website,
			&d.Coords.Lat,
			&d.Coords.Lng,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(highlights, &d.Highlights)
		_ = json.Unmarshal(amenities, &d.Amenities)
		_ = json.Unmarshal(nearby, &d.NearbyAttractions)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, listRestaurantsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Restaurant{}
	for rows.Next() {
		var rs domain.Restaurant
		var features []byte
		if err := rows.Scan(
			&rs.ID,
			&rs.Name,
			&rs.Cuisine,
			&rs.Location,
			&rs.Rating,
			&rs.PriceRange,
			&rs.Description,
			&features,
			&rs.Hours,
			&rs.Dress,
			&rs.Reservations,
			&rs.Phone,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(features, &rs.Features)
		out = append(out, rs)
	}
	return out, rows.Err()
}

func (r *Repo) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, listReservationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Reservation{}
	for rows.Next() {
		var rv domain.Reservation
		var (
			typ, status                  string
			checkIn, checkOut, resDate   sql.NullTime
			resTime, roomType, tableType sql.NullString
			specialRequests              sql.NullString
			total                        int64
		)
		if err := rows.Scan(
			&rv.ID,
			&typ,
			&status,
			&rv.Property,
			&rv.Location,
			&checkIn,
			&checkOut,
			&resDate,
			&resTime,
			&rv.Guests,
			&roomType,
			&tableType,
			&total,
			&rv.ConfirmationNumber,
			&specialRequests,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		rv.Type = domain.ReservationType(typ)
		rv.Status = domain.ReservationStatus(status)
		rv.CheckIn = timePtr(checkIn)
		rv.CheckOut = timePtr(checkOut)
		rv.ReservationDate = timePtr(resDate)
		rv.ReservationTime = resTime.String
		rv.RoomType = roomType.String
		rv.TableType = tableType.String
		rv.SpecialRequests = specialRequests.String
		rv.TotalAmount = domain.Cents(total)
		out = append(out, rv)
	}
	return out, rows.Err()
}
