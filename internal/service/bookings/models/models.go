package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модели

// ListBookingsRequest фильтры списка бронирований (все поля опциональны)
type ListBookingsRequest struct {
	FacilityID *int64
	Date       *string // "2025-01-10"
	Status     *string
}

// ToDomainFilter конвертирует request в domain фильтр.
// Список показывает все статусы, включая отклонённые, если статус не задан
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		FacilityID:      r.FacilityID,
		IncludeRejected: true,
	}

	if r.Date != nil {
		date, err := types.ParseDate(*r.Date)
		if err != nil {
			return filter, fmt.Errorf("invalid date %q: %v", *r.Date, err)
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос администратора на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64     `json:"id"`
	FacilityID   int64     `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	UserID       int64     `json:"user_id"`
	OwnerName    *string   `json:"owner_name,omitempty"`
	Date         string    `json:"date"`       // "2025-01-10"
	StartTime    string    `json:"start_time"` // "09:30"
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		FacilityID:   b.FacilityID,
		FacilityName: b.FacilityName,
		UserID:       b.UserID,
		OwnerName:    b.OwnerName,
		Date:         b.Date.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO.
// Пустой список сериализуется как [], не null
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp = append(resp, *r)
		}
	}
	return resp
}
