package common

import (
	"encoding/json"
	"ged-apae-console/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Log records the internal error behind e, if any.
func (e *AppError) Log(r *http.Request) {
	if e.Err == nil {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"status_code":    e.Code,
		"path":           r.URL.Path,
		"internal_error": e.Err.Error(),
	}).Error(e.Message)
}

// Send writes e as a JSON body.
func (e *AppError) Send(w http.ResponseWriter, r *http.Request) {
	e.Log(r)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
