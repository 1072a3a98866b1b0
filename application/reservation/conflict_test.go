package reservation_test

import (
	"context"
	"errors"
	"testing"

	appreservation "github.com/muhammadheryan/table-booking/application/reservation"
	reservationmocks "github.com/muhammadheryan/table-booking/mocks/repository/reservation"
	"github.com/muhammadheryan/table-booking/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "inside", start: "10:30", end: "10:45", want: true},
		{name: "identical", start: "10:00", end: "11:00", want: true},
		{name: "covers", start: "09:00", end: "12:00", want: true},
		{name: "straddles start", start: "09:30", end: "10:15", want: true},
		{name: "straddles end", start: "10:59", end: "11:30", want: true},
		{name: "back to back after", start: "11:00", end: "12:00", want: false},
		{name: "back to back before", start: "09:00", end: "10:00", want: false},
		{name: "disjoint", start: "14:00", end: "15:00", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appreservation.Overlaps("10:00", "11:00", tt.start, tt.end))
		})
	}
}

func TestOverlaps_UnparsableFallsBackToLexical(t *testing.T) {
	// "9:30" does not match the layout; lexically "9:30" > "10:00"
	assert.False(t, appreservation.Overlaps("9:30", "9:45", "10:00", "11:00"))
	assert.True(t, appreservation.Overlaps("10:00", "11:00x", "10:30", "10:45"))
}

func TestBefore(t *testing.T) {
	assert.True(t, appreservation.Before("10:00", "10:01"))
	assert.False(t, appreservation.Before("10:00", "10:00"))
	assert.False(t, appreservation.Before("18:00", "09:00"))
}

func TestHasConflict(t *testing.T) {
	existing := []model.ReservationEntity{
		{TableNumber: 5, Date: "2024-06-01", SlotTimeStart: "08:00", SlotTimeEnd: "09:00"},
		{TableNumber: 5, Date: "2024-06-01", SlotTimeStart: "10:00", SlotTimeEnd: "11:00"},
	}

	t.Run("overlap found", func(t *testing.T) {
		repo := reservationmocks.NewReservationRepository(t)
		repo.On("ListByTableAndDate", context.Background(), 5, "2024-06-01").Return(existing, nil).Once()

		got, err := appreservation.HasConflict(context.Background(), repo, 5, "2024-06-01", "10:30", "10:45")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("adjacent slot is free", func(t *testing.T) {
		repo := reservationmocks.NewReservationRepository(t)
		repo.On("ListByTableAndDate", context.Background(), 5, "2024-06-01").Return(existing, nil).Once()

		got, err := appreservation.HasConflict(context.Background(), repo, 5, "2024-06-01", "11:00", "12:00")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("scan error", func(t *testing.T) {
		repo := reservationmocks.NewReservationRepository(t)
		repo.On("ListByTableAndDate", context.Background(), 5, "2024-06-01").Return(nil, errors.New("boom")).Once()

		_, err := appreservation.HasConflict(context.Background(), repo, 5, "2024-06-01", "11:00", "12:00")
		assert.Error(t, err)
	})
}
