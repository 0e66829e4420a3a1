package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// Коды ошибок API
const (
	CodeBookingsDisabled   = "BOOKINGS_DISABLED"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeDomainNotAllowed   = "DOMAIN_NOT_ALLOWED"
	CodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	CodeInvalidSlot        = "INVALID_SLOT"
	CodeInvalidDate        = "INVALID_DATE"
	CodeDateInPast         = "DATE_IN_PAST"
	CodeLeadTimeTooShort   = "LEAD_TIME_TOO_SHORT"
	CodeSlotTaken          = "SLOT_TAKEN"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidCourt       = "INVALID_COURT"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeRateLimited        = "RATE_LIMITED"
	CodeExpired            = "EXPIRED"
	CodeInvalidCode        = "INVALID_CODE"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

const (
	msgInternalError = "internal server error"
	msgInvalidBody   = "invalid request body"

	// максимальный размер тела запроса
	maxBodyBytes = 1 << 20
)

// ErrorBody тело ошибки
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse ответ с ошибкой
type ErrorResponse struct {
	Error             ErrorBody `json:"error"`
	RetryAfterSeconds *int      `json:"retryAfterSeconds,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с машиночитаемым кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondRateLimited отправляет 429 с Retry-After
func RespondRateLimited(w http.ResponseWriter, message string, retryAfterSeconds int) {
	if retryAfterSeconds < 1 {
		retryAfterSeconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	RespondJSON(w, http.StatusTooManyRequests, ErrorResponse{
		Error:             ErrorBody{Code: CodeRateLimited, Message: message},
		RetryAfterSeconds: &retryAfterSeconds,
	})
}

// RespondBadRequest отправляет 400 с кодом INVALID_REQUEST
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidRequest, message)
}

// RespondInvalidBody отправляет 400 для нечитаемого тела запроса
func RespondInvalidBody(w http.ResponseWriter) {
	RespondBadRequest(w, msgInvalidBody)
}

// RespondNotFound отправляет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondUnauthorized отправляет 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// RespondInternalError отправляет 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, msgInternalError)
}

// DecodeJSON декодирует тело запроса с ограничением размера
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// NoCache запрещает кэширование ответа
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}
