package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muhammadheryan/table-booking/constant"
	cerr "github.com/muhammadheryan/table-booking/utils/errors"
	"github.com/muhammadheryan/table-booking/utils/logger"
	"go.uber.org/zap"
)

type successResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, successResponse{Data: data})
}

// writeError renders CustomError values as is. Any other error is reported as
// a generic internal error so its text never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		logger.Error("[writeError] unexpected error type", zap.String("error", err.Error()))
		ce = cerr.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{Error: ce.Error(), Code: ce.ErrorCode()})
}
