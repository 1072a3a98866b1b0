package validatorx_test

import (
	"errors"
	"testing"

	validatorx "github.com/muhammadheryan/table-booking/utils/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{email: "ann@example.com"},
		{email: "first.last+tag@sub.example.io"},
		{email: "a_b%c-d@host-name.org"},
		{email: "", wantErr: true},
		{email: "plainaddress", wantErr: true},
		{email: "missing-tld@example", wantErr: true},
		{email: "@example.com", wantErr: true},
		{email: "ann@example.c", wantErr: true},
		{email: "ann example@example.com", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := validatorx.ValidateEmail(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, validatorx.ErrInvalidEmail)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "meets policy", password: "Str0ngPass!word"},
		{name: "exactly twelve", password: "Abcdefgh1_xy"},
		{name: "too short", password: "Ab1!short", wantErr: true},
		{name: "eleven characters", password: "Abcdefgh1_x", wantErr: true},
		{name: "no upper", password: "str0ngpass!word", wantErr: true},
		{name: "no lower", password: "STR0NGPASS!WORD", wantErr: true},
		{name: "no digit", password: "StrongPass!word", wantErr: true},
		{name: "no symbol", password: "Str0ngPassword1", wantErr: true},
		{name: "symbol outside allowed set", password: "Str0ngPass*word", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, validatorx.ErrInvalidPassword)
				return
			}
			assert.NoError(t, err)
		})
	}
}

type payload struct {
	TableNumber *int   `json:"tableNumber" validate:"required"`
	ClientName  string `json:"clientName" validate:"required"`
	Places      *int   `json:"places" validate:"omitempty,gt=0"`
	Email       string `json:"email" validate:"omitempty,email_format"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStructDescribe(t *testing.T) {
	five := 5
	zero := 0
	tests := []struct {
		name    string
		in      payload
		want    string
		wantErr bool
	}{
		{
			name: "valid",
			in:   payload{TableNumber: &five, ClientName: "Ann"},
		},
		{
			name:    "first missing field is named",
			in:      payload{},
			want:    "Missing required field: tableNumber",
			wantErr: true,
		},
		{
			name:    "second missing field is named when first is present",
			in:      payload{TableNumber: &five},
			want:    "Missing required field: clientName",
			wantErr: true,
		},
		{
			name:    "non positive value",
			in:      payload{TableNumber: &five, ClientName: "Ann", Places: &zero},
			want:    "Invalid value for field: places",
			wantErr: true,
		},
		{
			name:    "bad email",
			in:      payload{TableNumber: &five, ClientName: "Ann", Email: "nope"},
			want:    "Invalid email format.",
			wantErr: true,
		},
		{
			name:    "bad date",
			in:      payload{TableNumber: &five, ClientName: "Ann", Date: "01/05/2024"},
			want:    "Invalid format for field: date, expected 2006-01-02",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.want, validatorx.Describe(err))
		})
	}
}

func TestDescribeNonValidatorError(t *testing.T) {
	assert.Equal(t, "boom", validatorx.Describe(errors.New("boom")))
}
