package models

import (
	"time"

	"github.com/m04kA/HF-AvailabilityService/internal/domain"
)

// Request модели

// CreateServiceTypeRequest запрос на добавление услуги в каталог
type CreateServiceTypeRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ToDomainServiceType конвертирует request в domain модель
func (r *CreateServiceTypeRequest) ToDomainServiceType() *domain.ServiceType {
	return &domain.ServiceType{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}
}

// ReplaceServiceTypesRequest запрос на полную замену каталога
type ReplaceServiceTypesRequest struct {
	ServiceTypes []CreateServiceTypeRequest `json:"serviceTypes"`
}

// UpdateScheduleRequest запрос на частичное обновление расписания
// nil-поля не меняются
type UpdateScheduleRequest struct {
	WorkingDays     *[]int  `json:"workingDays,omitempty"`     // дни недели 0-6, 0 = воскресенье
	OpenTime        *string `json:"openTime,omitempty"`        // "09:00"
	CloseTime       *string `json:"closeTime,omitempty"`       // "18:00"
	SlotStepMinutes *int    `json:"slotStepMinutes,omitempty"` // шаг сетки слотов
}

// Response модели

// ServiceTypeResponse ответ с данными услуги
type ServiceTypeResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ServiceTypeListResponse ответ со списком услуг
type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"serviceTypes"`
}

// ScheduleResponse ответ с расписанием работы
type ScheduleResponse struct {
	WorkingDays     []int  `json:"workingDays"`
	OpenTime        string `json:"openTime"`
	CloseTime       string `json:"closeTime"`
	SlotStepMinutes int    `json:"slotStepMinutes"`
	UpdatedAt       string `json:"updatedAt"`
}

// Методы конвертации

// FromDomainServiceType конвертирует domain модель в DTO
func FromDomainServiceType(st *domain.ServiceType) *ServiceTypeResponse {
	if st == nil {
		return nil
	}

	return &ServiceTypeResponse{
		ID:              st.ID.String(),
		Name:            st.Name,
		DurationMinutes: st.DurationMinutes,
		Price:           st.Price,
		CreatedAt:       st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       st.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainServiceTypeList конвертирует список domain моделей в DTO
func FromDomainServiceTypeList(types []*domain.ServiceType) *ServiceTypeListResponse {
	resp := &ServiceTypeListResponse{
		ServiceTypes: make([]ServiceTypeResponse, 0, len(types)),
	}

	for _, st := range types {
		if dto := FromDomainServiceType(st); dto != nil {
			resp.ServiceTypes = append(resp.ServiceTypes, *dto)
		}
	}

	return resp
}

// FromDomainSchedule конвертирует domain расписание в DTO
func FromDomainSchedule(s *domain.ScheduleConfig) *ScheduleResponse {
	if s == nil {
		return nil
	}

	days := s.WorkingDays
	if days == nil {
		days = []int{}
	}

	return &ScheduleResponse{
		WorkingDays:     days,
		OpenTime:        s.OpenTime.String(),
		CloseTime:       s.CloseTime.String(),
		SlotStepMinutes: s.Step(),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}
