package model

// ReservationEntity is a stored reservation. CreatedBy and CreatedAt are
// internal and never returned to clients.
type ReservationEntity struct {
	ReservationID string
	TableNumber   int
	ClientName    string
	PhoneNumber   string
	Date          string
	SlotTimeStart string
	SlotTimeEnd   string
	CreatedBy     string
	CreatedAt     string
}

type CreateReservationRequest struct {
	TableNumber   *int   `json:"tableNumber" validate:"required"`
	ClientName    string `json:"clientName" validate:"required"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	SlotTimeStart string `json:"slotTimeStart" validate:"required,datetime=15:04"`
	SlotTimeEnd   string `json:"slotTimeEnd" validate:"required,datetime=15:04"`
}

type CreateReservationResponse struct {
	ReservationID string `json:"reservationId"`
}

type Reservation struct {
	TableNumber   int    `json:"tableNumber"`
	ClientName    string `json:"clientName"`
	PhoneNumber   string `json:"phoneNumber"`
	Date          string `json:"date"`
	SlotTimeStart string `json:"slotTimeStart"`
	SlotTimeEnd   string `json:"slotTimeEnd"`
}

func NewReservation(e ReservationEntity) Reservation {
	return Reservation{
		TableNumber:   e.TableNumber,
		ClientName:    e.ClientName,
		PhoneNumber:   e.PhoneNumber,
		Date:          e.Date,
		SlotTimeStart: e.SlotTimeStart,
		SlotTimeEnd:   e.SlotTimeEnd,
	}
}
