package constant

import "time"

// Wire formats for reservation dates and slot boundaries.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	ReservationLockPrefix     = "reservation-lock:"
	DefaultReservationLockTTL = 5 * time.Second
)

const (
	ReservationExchange          = "reservation_events"
	ReservationCreatedRoutingKey = "reservation.created"
)
