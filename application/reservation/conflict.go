package reservation

import (
	"context"
	"time"

	"github.com/muhammadheryan/table-booking/constant"
	reservationrepo "github.com/muhammadheryan/table-booking/repository/reservation"
)

// HasConflict reports whether any reservation of the table on date overlaps
// the half-open slot [start, end).
func HasConflict(ctx context.Context, repo reservationrepo.ReservationRepository, tableNumber int, date, start, end string) (bool, error) {
	existing, err := repo.ListByTableAndDate(ctx, tableNumber, date)
	if err != nil {
		return false, err
	}

	for _, r := range existing {
		if Overlaps(r.SlotTimeStart, r.SlotTimeEnd, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// Overlaps reports existingStart < end && existingEnd > start. Slots that only
// touch do not overlap. Clock times are compared parsed; if any value does not
// parse the strings are compared as is.
func Overlaps(existingStart, existingEnd, start, end string) bool {
	es, err1 := time.Parse(constant.TimeLayout, existingStart)
	ee, err2 := time.Parse(constant.TimeLayout, existingEnd)
	s, err3 := time.Parse(constant.TimeLayout, start)
	e, err4 := time.Parse(constant.TimeLayout, end)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return existingStart < end && existingEnd > start
	}
	return es.Before(e) && ee.After(s)
}

// Before reports whether clock time a is strictly earlier than b.
func Before(a, b string) bool {
	ta, err1 := time.Parse(constant.TimeLayout, a)
	tb, err2 := time.Parse(constant.TimeLayout, b)
	if err1 != nil || err2 != nil {
		return a < b
	}
	return ta.Before(tb)
}
