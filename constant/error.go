package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrUserExists
	ErrInvalidCredentials
	ErrUserNotFound
	ErrUserNotConfirmed
	ErrProvider
	ErrTableNotFound
	ErrTableExists
	ErrSlotConflict
	ErrReservationInProgress
	ErrMethodNotAllowed
	ErrInvalidPath
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "internal server error",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorized request",
	ErrUserExists:            "User already exists.",
	ErrInvalidCredentials:    "Invalid credentials.",
	ErrUserNotFound:          "User does not exist.",
	ErrUserNotConfirmed:      "User is not confirmed.",
	ErrProvider:              "identity provider rejected the request",
	ErrTableNotFound:         "Table does not exist",
	ErrTableExists:           "Table already exists",
	ErrSlotConflict:          "Table is already reserved for the selected time slot",
	ErrReservationInProgress: "Another reservation for this table and date is in progress, try again",
	ErrMethodNotAllowed:      "Method Not Allowed",
	ErrInvalidPath:           "Invalid path",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrUserExists:            http.StatusBadRequest,
	ErrInvalidCredentials:    http.StatusBadRequest,
	ErrUserNotFound:          http.StatusBadRequest,
	ErrUserNotConfirmed:      http.StatusBadRequest,
	ErrProvider:              http.StatusBadRequest,
	ErrTableNotFound:         http.StatusBadRequest,
	ErrTableExists:           http.StatusBadRequest,
	ErrSlotConflict:          http.StatusBadRequest,
	ErrReservationInProgress: http.StatusBadRequest,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInvalidPath:           http.StatusNotFound,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrUserExists:            "0005",
	ErrInvalidCredentials:    "0006",
	ErrUserNotFound:          "0007",
	ErrUserNotConfirmed:      "0008",
	ErrProvider:              "0009",
	ErrTableNotFound:         "0010",
	ErrTableExists:           "0011",
	ErrSlotConflict:          "0012",
	ErrReservationInProgress: "0013",
	ErrMethodNotAllowed:      "0014",
	ErrInvalidPath:           "0015",
}
