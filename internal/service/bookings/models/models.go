package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
}

// Response модели

// CourtResponse данные корта в составе бронирования
type CourtResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string         `json:"id"`
	StudentName  string         `json:"studentName"`
	StudentEmail string         `json:"studentEmail"`
	CourtID      string         `json:"courtId"`
	Court        *CourtResponse `json:"court,omitempty"`
	BookingDate  string         `json:"date"`      // "2025-06-01"
	StartTime    string         `json:"startTime"` // "13:00"
	TeamMembers  string         `json:"teamMembers"`
	Status       string         `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		StudentName:  b.StudentName,
		StudentEmail: b.StudentEmail,
		CourtID:      b.CourtID,
		BookingDate:  domain.FormatDate(b.BookingDate),
		StartTime:    b.StartTime.String(),
		TeamMembers:  b.TeamMembers,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if b.Court != nil {
		resp.Court = &CourtResponse{
			ID:     b.Court.ID,
			Name:   b.Court.Name,
			Type:   b.Court.Type,
			Active: b.Court.Active,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
