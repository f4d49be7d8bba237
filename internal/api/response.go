package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/database"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// WriteCreated writes a 201 Created response.
func WriteCreated(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, "UNAUTHORIZED")
}

// Error codes for domain failures.
const (
	CodeInvalidDateFormat    = "INVALID_DATE_FORMAT"
	CodeInvalidCalendarDate  = "INVALID_CALENDAR_DATE"
	CodeInvalidJavaneseMonth = "INVALID_JAVANESE_MONTH"
	CodeInvalidJavaneseDate  = "INVALID_JAVANESE_DATE"
	CodeBadRequest           = "BAD_REQUEST"
	CodeNotFound             = "NOT_FOUND"
	CodeDuplicate            = "DUPLICATE"
	CodeInternal             = "INTERNAL_ERROR"
)

// errorStatus classifies err into an HTTP status and error code.
// Unknown errors are internal.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, calendar.ErrInvalidDateFormat):
		return http.StatusBadRequest, CodeInvalidDateFormat
	case errors.Is(err, calendar.ErrInvalidCalendarDate):
		return http.StatusBadRequest, CodeInvalidCalendarDate
	case errors.Is(err, calendar.ErrInvalidJavaneseMonth):
		return http.StatusBadRequest, CodeInvalidJavaneseMonth
	case errors.Is(err, calendar.ErrInvalidJavaneseDate):
		return http.StatusBadRequest, CodeInvalidJavaneseDate
	case errors.Is(err, calendar.ErrInvalidRange):
		return http.StatusBadRequest, CodeBadRequest
	case database.IsNotFound(err):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, database.ErrDuplicate):
		return http.StatusConflict, CodeDuplicate
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// WriteDomainError writes err with the status and code errorStatus picks.
// Internal errors are not echoed to the client.
func WriteDomainError(w http.ResponseWriter, err error) error {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		return WriteInternalError(w, "Internal server error")
	}
	return WriteError(w, status, err.Error(), code)
}
