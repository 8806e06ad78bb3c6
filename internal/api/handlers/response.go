package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/availability"
)

// Коды ошибок в теле ответа
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeInternalError          = "INTERNAL_ERROR"
	CodeTransportError         = "TRANSPORT_ERROR"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeSlotAlreadyDeclared    = "SLOT_ALREADY_DECLARED"
	CodePastDate               = string(availability.ReasonPastDate)
	CodeSlotTaken              = string(availability.ReasonSlotTaken)
	CodeNoSlotsDeclared        = string(availability.ReasonNoSlotsDeclared)
	CodeOutsideAvailableWindow = string(availability.ReasonOutsideAvailableWindow)
)

const msgInternalError = "внутренняя ошибка сервера"

// WindowResponse временное окно в ответе
type WindowResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code             string           `json:"code"`
	Message          string           `json:"message"`
	AvailableWindows []WindowResponse `json:"available_windows,omitempty"`
}

// FromWindows конвертирует окна движка доступности; пустой список - [], не null
func FromWindows(windows []availability.Window) []WindowResponse {
	resp := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		resp = append(resp, WindowResponse{StartTime: w.Start.String(), EndTime: w.End.String()})
	}
	return resp
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ошибку с кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// RespondRejection пишет отказ правил доступности, при необходимости с объявленными окнами
func RespondRejection(w http.ResponseWriter, status int, reason availability.Reason, message string, windows []availability.Window) {
	resp := ErrorResponse{Code: string(reason), Message: message}
	if len(windows) > 0 {
		resp.AvailableWindows = FromWindows(windows)
	}
	RespondJSON(w, status, resp)
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidInput, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

func RespondBadGateway(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadGateway, CodeTransportError, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, msgInternalError)
}

// RejectionStatus HTTP статус для причины отказа
func RejectionStatus(reason availability.Reason) int {
	if reason == availability.ReasonSlotTaken {
		return http.StatusConflict
	}
	return http.StatusUnprocessableEntity
}

// DecodeJSON декодирует тело запроса, запрещая неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	return nil
}

// PathInt64 извлекает положительный int64 из переменной маршрута
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// QueryInt64 извлекает необязательный положительный int64 из query. nil, если параметра нет
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &v, nil
}

// QueryString извлекает необязательную строку из query. nil, если параметр пустой
func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}
