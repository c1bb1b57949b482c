package models

import (
	"time"

	"github.com/roltrader/autoperks/internal/domain"
)

// Request модели

// CreateTechnicianRequest запрос на добавление мастера в состав
type CreateTechnicianRequest struct {
	Name        string   `json:"name"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateTechnicianRequest) ToDomain() *domain.Technician {
	tech := &domain.Technician{
		Name:        r.Name,
		Active:      true,
		Specialties: r.Specialties,
	}
	if r.Email != nil {
		tech.Email = *r.Email
	}
	if r.Phone != nil {
		tech.Phone = *r.Phone
	}
	if r.Color != nil {
		tech.Color = *r.Color
	}
	if tech.Specialties == nil {
		tech.Specialties = []string{}
	}
	return tech
}

// UpdateTechnicianRequest запрос на частичное обновление мастера
// Указанные поля заменяют текущие значения, остальные не меняются
type UpdateTechnicianRequest struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// ToDomainUpdate конвертирует request в domain модель обновления
func (r *UpdateTechnicianRequest) ToDomainUpdate() domain.TechnicianUpdate {
	update := domain.TechnicianUpdate{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Active: r.Active,
		Color:  r.Color,
	}
	if r.Specialties != nil {
		update.Specialties = &r.Specialties
	}
	return update
}

// SetDateExceptionRequest запрос на установку исключения по дате
// Available=false закрывает мастеру весь день
type SetDateExceptionRequest struct {
	Date      string  `json:"date"` // "2026-03-15"
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// Response модели

// TechnicianResponse ответ с данными мастера
type TechnicianResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Active      bool      `json:"active"`
	Specialties []string  `json:"specialties"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TechnicianListResponse ответ со списком мастеров
type TechnicianListResponse struct {
	Technicians []TechnicianResponse `json:"technicians"`
}

// DateExceptionResponse ответ с данными исключения по дате
type DateExceptionResponse struct {
	ID           int64   `json:"id"`
	TechnicianID int64   `json:"technicianId"`
	Date         string  `json:"date"`
	Available    bool    `json:"available"`
	Reason       *string `json:"reason,omitempty"`
}

// DateExceptionListResponse ответ со списком исключений мастера
type DateExceptionListResponse struct {
	Exceptions []DateExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainTechnician конвертирует domain модель в DTO
func FromDomainTechnician(t *domain.Technician) *TechnicianResponse {
	if t == nil {
		return nil
	}

	specialties := t.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &TechnicianResponse{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		Phone:       t.Phone,
		Active:      t.Active,
		Specialties: specialties,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainTechnicianList конвертирует список domain моделей в DTO
func FromDomainTechnicianList(techs []*domain.Technician) *TechnicianListResponse {
	resp := &TechnicianListResponse{
		Technicians: make([]TechnicianResponse, 0, len(techs)),
	}

	for _, tech := range techs {
		if techResp := FromDomainTechnician(tech); techResp != nil {
			resp.Technicians = append(resp.Technicians, *techResp)
		}
	}

	return resp
}

// FromDomainDateException конвертирует domain модель в DTO
func FromDomainDateException(e *domain.DateException) *DateExceptionResponse {
	if e == nil {
		return nil
	}

	return &DateExceptionResponse{
		ID:           e.ID,
		TechnicianID: e.TechnicianID,
		Date:         e.Date.Format(domain.DateFormat),
		Available:    e.Available,
		Reason:       e.Reason,
	}
}

// FromDomainDateExceptionList конвертирует список domain моделей в DTO
func FromDomainDateExceptionList(excs []*domain.DateException) *DateExceptionListResponse {
	resp := &DateExceptionListResponse{
		Exceptions: make([]DateExceptionResponse, 0, len(excs)),
	}

	for _, exc := range excs {
		if excResp := FromDomainDateException(exc); excResp != nil {
			resp.Exceptions = append(resp.Exceptions, *excResp)
		}
	}

	return resp
}
