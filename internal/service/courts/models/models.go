package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CreateCourtRequest запрос на добавление корта
type CreateCourtRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active *bool  `json:"active,omitempty"`
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) []CourtResponse {
	resp := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		if dto := FromDomainCourt(c); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}
