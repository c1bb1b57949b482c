package models

import (
	"time"

	"github.com/roltrader/autoperks/internal/domain"
)

// Request модели

// CreateBlockedTimeRequest запрос на создание блокировки времени мастера
type CreateBlockedTimeRequest struct {
	TechnicianID int64  `json:"technicianId"`
	Date         string `json:"date"`      // "2026-03-15"
	StartTime    string `json:"startTime"` // "09:00"
	EndTime      string `json:"endTime"`   // "12:00"
	Reason       string `json:"reason"`
}

// ListBlockedTimesRequest запрос на получение блокировок с фильтрацией
type ListBlockedTimesRequest struct {
	TechnicianID *int64     `json:"technicianId,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
}

// Response модели

// BlockedTimeResponse ответ с данными блокировки
type BlockedTimeResponse struct {
	ID           int64     `json:"id"`
	TechnicianID int64     `json:"technicianId"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BlockedTimeListResponse ответ со списком блокировок
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
}

// Методы конвертации

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(b *domain.BlockedTime) *BlockedTimeResponse {
	if b == nil {
		return nil
	}

	return &BlockedTimeResponse{
		ID:           b.ID,
		TechnicianID: b.TechnicianID,
		Date:         b.Date.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBlockedTimeList конвертирует список domain моделей в DTO
func FromDomainBlockedTimeList(blocks []*domain.BlockedTime) *BlockedTimeListResponse {
	resp := &BlockedTimeListResponse{
		BlockedTimes: make([]BlockedTimeResponse, 0, len(blocks)),
	}

	for _, block := range blocks {
		if blockResp := FromDomainBlockedTime(block); blockResp != nil {
			resp.BlockedTimes = append(resp.BlockedTimes, *blockResp)
		}
	}

	return resp
}
