package models

import "github.com/roltrader/autoperks/internal/domain"

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services = append(resp.Services, *svcResp)
		}
	}

	return resp
}
