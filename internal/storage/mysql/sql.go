package mysql

const upsertRoomSQL = `
INSERT INTO rooms
  (id, name, type, size_sqft, max_guests, price_cents, original_price_cents,
   amenities, features, description, availability)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name                 = VALUES(name),
  type                 = VALUES(type),
  size_sqft            = VALUES(size_sqft),
  max_guests           = VALUES(max_guests),
  price_cents          = VALUES(price_cents),
  original_price_cents = VALUES(original_price_cents),
  amenities            = VALUES(amenities),
  features             = VALUES(features),
  description          = VALUES(description),
  availability         = VALUES(availability),
  updated_at           = CURRENT_TIMESTAMP
`

const upsertLocationSQL = `
INSERT INTO locations (value, label, state)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  label = VALUES(label),
  state = VALUES(state)
`

const upsertDestinationSQL = `
INSERT INTO destinations
  (id, name, state, region, rating, rooms, restaurants, description,
   highlights, amenities, nearby_attractions, phone, website, lat, lng)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name               = VALUES(name),
  state              = VALUES(state),
  region             = VALUES(region),
  rating             = VALUES(rating),
  rooms              = VALUES(rooms),
  restaurants        = VALUES(restaurants),
  description        = VALUES(description),
  highlights         = VALUES(highlights),
  amenities          = VALUES(amenities),
  nearby_attractions = VALUES(nearby_attractions),
  phone              = VALUES(phone),
  website            = VALUES(website),
  lat                = VALUES(lat),
  lng                = VALUES(lng)
`

const upsertRestaurantSQL = `
INSERT INTO restaurants
  (id, name, cuisine, location, rating, price_range, description, features,
   hours, dress, reservations, phone)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name         = VALUES(name),
  cuisine      = VALUES(cuisine),
  location     = VALUES(location),
  rating       = VALUES(rating),
  price_range  = VALUES(price_range),
  description  = VALUES(description),
  features     = VALUES(features),
  hours        = VALUES(hours),
  dress        = VALUES(dress),
  reservations = VALUES(reservations),
  phone        = VALUES(phone)
`

const upsertReservationSQL = `
INSERT INTO reservations
  (id, type, status, property, location, check_in, check_out, reservation_date,
   reservation_time, guests, room_type, table_type, total_amount_cents,
   confirmation_number, special_requests, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  status           = VALUES(status),
  check_in         = VALUES(check_in),
  check_out        = VALUES(check_out),
  reservation_date = VALUES(reservation_date),
  reservation_time = VALUES(reservation_time),
  guests           = VALUES(guests),
  total_amount_cents = VALUES(total_amount_cents),
  special_requests = VALUES(special_requests)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// seq is assigned on first insert, so lists come back in seed order.
const selectRoomsSQL = `
SELECT id, name, type, size_sqft, max_guests, price_cents, original_price_cents,
       amenities, features, description, availability
FROM rooms
`

const listRoomsSQL = selectRoomsSQL + `ORDER BY seq`

const getRoomSQL = selectRoomsSQL + `WHERE id = ?`

const listLocationsSQL = `
SELECT value, label, state FROM locations ORDER BY seq
`

const listDestinationsSQL = `
SELECT id, name, state, region, rating, rooms, restaurants, description,
       highlights, amenities, nearby_attractions, phone, website, lat, lng
FROM destinations
ORDER BY seq
`

const listRestaurantsSQL = `
SELECT id, name, cuisine, location, rating, price_range, description, features,
       hours, dress, reservations, phone
FROM restaurants
ORDER BY id
`

const listReservationsSQL = `
SELECT id, type, status, property, location, check_in, check_out, reservation_date,
       reservation_time, guests, room_type, table_type, total_amount_cents,
       confirmation_number, special_requests, created_at
FROM reservations
ORDER BY id
`
