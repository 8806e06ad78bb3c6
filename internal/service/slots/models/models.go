package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// DeclareSlotRequest объявление одного окна
type DeclareSlotRequest struct {
	FacilityID int64  `json:"facility_id"`
	Date       string `json:"date"`       // "2025-01-10"
	StartTime  string `json:"start_time"` // "09:00"
	EndTime    string `json:"end_time"`   // "17:00"
}

// DeclareRecurringRequest объявление окна на все даты правила RRULE
type DeclareRecurringRequest struct {
	FacilityID int64  `json:"facility_id"`
	RRule      string `json:"rrule"` // "FREQ=WEEKLY;BYDAY=MO,WE"
	From       string `json:"from"`  // первая дата включительно
	Until      string `json:"until"` // последняя дата включительно
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// ListSlotsRequest фильтры списка окон
type ListSlotsRequest struct {
	FacilityID *int64
	Date       *string
}

// SlotResponse ответ с данными окна
type SlotResponse struct {
	ID         int64     `json:"id"`
	FacilityID int64     `json:"facility_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecurringResponse результат объявления по правилу
type RecurringResponse struct {
	Created []SlotResponse `json:"created"`
	Skipped int            `json:"skipped"` // уже объявленные окна
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.AvailableSlot) SlotResponse {
	resp := SlotResponse{
		FacilityID: s.FacilityID,
		Date:       s.Date.Format(domain.DateFormat),
		StartTime:  s.StartTime.String(),
		EndTime:    s.EndTime.String(),
		CreatedAt:  s.CreatedAt,
	}
	if s.ID != nil {
		resp.ID = *s.ID
	}
	return resp
}

// FromDomainSlotList конвертирует список; пустой список - [], не null
func FromDomainSlotList(slots []*domain.AvailableSlot) []SlotResponse {
	resp := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, FromDomainSlot(s))
	}
	return resp
}
