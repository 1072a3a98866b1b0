package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	reservationapp "github.com/muhammadheryan/table-booking/application/reservation"
	tableapp "github.com/muhammadheryan/table-booking/application/table"
	userapp "github.com/muhammadheryan/table-booking/application/user"
	"github.com/muhammadheryan/table-booking/constant"
	"github.com/muhammadheryan/table-booking/model"
	"github.com/muhammadheryan/table-booking/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const invalidBodyMessage = "Invalid request body"

type RestHandler struct {
	UserApp        userapp.UserApp
	TableApp       tableapp.TableApp
	ReservationApp reservationapp.ReservationApp
}

func NewTransport(UserApp userapp.UserApp, TableApp tableapp.TableApp, ReservationApp reservationapp.ReservationApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:        UserApp,
		TableApp:       TableApp,
		ReservationApp: ReservationApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/signup", rh.SignUp).Methods(http.MethodPost)
	mux.HandleFunc("/signin", rh.SignIn).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/tables", rh.ListTables).Methods(http.MethodGet)
	mux.HandleFunc("/tables", rh.CreateTable).Methods(http.MethodPost)
	mux.HandleFunc("/tables/{id}", rh.GetTableByID).Methods(http.MethodGet)
	mux.HandleFunc("/reservations", rh.ListReservations).Methods(http.MethodGet)
	mux.HandleFunc("/reservations", rh.CreateReservation).Methods(http.MethodPost)

	mux.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.SetCustomError(constant.ErrInvalidPath))
	})
	mux.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.SetCustomError(constant.ErrMethodNotAllowed))
	})

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(RecoverMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, invalidBodyMessage)
	}
	return nil
}

// SignUp handler
// @Summary Sign up
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignUpRequest true "Sign up request"
// @Success 200 {object} model.SignUpResponse
// @Failure 400 {object} ErrorResponse
// @Router /signup [post]
func (s *RestHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.SignUp(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SignIn handler
// @Summary Sign in
// @Description Authenticate with email and password and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignInRequest true "Sign in request"
// @Success 200 {object} model.SignInResponse
// @Failure 400 {object} ErrorResponse
// @Router /signin [post]
func (s *RestHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.SignInRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.SignIn(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListTables handler
// @Summary List tables
// @Tags Tables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Table
// @Failure 401 {object} ErrorResponse
// @Router /tables [get]
func (s *RestHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	res, err := s.TableApp.ListTables(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateTable handler
// @Summary Create table
// @Tags Tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTableRequest true "Table"
// @Success 200 {object} model.CreateTableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tables [post]
func (s *RestHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTableRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TableApp.CreateTable(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetTableByID handler
// @Summary Get table
// @Tags Tables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table id"
// @Success 200 {object} model.Table
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tables/{id} [get]
func (s *RestHandler) GetTableByID(w http.ResponseWriter, r *http.Request) {
	res, err := s.TableApp.GetTableByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListReservations handler
// @Summary List reservations
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reservation
// @Failure 401 {object} ErrorResponse
// @Router /reservations [get]
func (s *RestHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReservationApp.ListReservations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateReservation handler
// @Summary Create reservation
// @Description Book a table slot; fails when the slot overlaps an existing reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateReservationRequest true "Reservation"
// @Success 200 {object} model.CreateReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /reservations [post]
func (s *RestHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReservationApp.CreateReservation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
