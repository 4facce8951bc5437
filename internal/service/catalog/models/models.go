package models

import (
	"github.com/m04kA/Mila-BookingService/internal/domain"
	schedulemodels "github.com/m04kA/Mila-BookingService/internal/service/schedule/models"
)

// StylistResponse мастер с услугами и расписанием
type StylistResponse struct {
	ID          int64                           `json:"id"`
	Name        string                          `json:"name"`
	Role        string                          `json:"role"`
	Bio         string                          `json:"bio"`
	Specialties []string                        `json:"specialties"`
	ServiceIDs  []int64                         `json:"serviceIds"`
	Rating      float64                         `json:"rating"`
	ReviewCount int                             `json:"reviewCount"`
	Instagram   *string                         `json:"instagram,omitempty"`
	Schedule    []schedulemodels.DayScheduleDTO `json:"schedule"`
}

// StylistListResponse список мастеров
type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
}

// ServiceResponse услуга салона
type ServiceResponse struct {
	ID              int64   `json:"id"`
	CategoryID      int64   `json:"categoryId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// CategoryResponse категория с её услугами
type CategoryResponse struct {
	ID          int64             `json:"id"`
	Slug        string            `json:"slug"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Services    []ServiceResponse `json:"services"`
}

// ServicesResponse каталог услуг по категориям
type ServicesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainStylist конвертирует domain модель в DTO
func FromDomainStylist(s *domain.Stylist) StylistResponse {
	resp := StylistResponse{
		ID:          s.ID,
		Name:        s.Name,
		Role:        s.Role,
		Bio:         s.Bio,
		Specialties: s.Specialties,
		ServiceIDs:  s.ServiceIDs,
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
		Instagram:   s.Instagram,
		Schedule:    schedulemodels.FromDomainSchedule(s.ID, s.Schedule).Days,
	}
	if resp.Specialties == nil {
		resp.Specialties = []string{}
	}
	if resp.ServiceIDs == nil {
		resp.ServiceIDs = []int64{}
	}
	return resp
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		CategoryID:      s.CategoryID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// GroupServices раскладывает услуги по категориям в порядке категорий
func GroupServices(categories []*domain.ServiceCategory, services []*domain.Service) *ServicesResponse {
	byCategory := make(map[int64][]ServiceResponse, len(categories))
	for _, s := range services {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], FromDomainService(s))
	}

	resp := &ServicesResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		items := byCategory[c.ID]
		if items == nil {
			items = []ServiceResponse{}
		}
		resp.Categories = append(resp.Categories, CategoryResponse{
			ID:          c.ID,
			Slug:        c.Slug,
			Name:        c.Name,
			Description: c.Description,
			Services:    items,
		})
	}
	return resp
}
