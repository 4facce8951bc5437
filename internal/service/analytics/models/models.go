package models

import (
	"github.com/m04kA/Mila-BookingService/internal/domain"
	bookingmodels "github.com/m04kA/Mila-BookingService/internal/service/bookings/models"
)

// DashboardResponse показатели главной страницы администратора
type DashboardResponse struct {
	TotalBookings  int                             `json:"totalBookings"`
	TodayBookings  int                             `json:"todayBookings"`
	MonthRevenue   float64                         `json:"monthRevenue"`
	UniqueClients  int                             `json:"uniqueClients"`
	RecentBookings []bookingmodels.BookingResponse `json:"recentBookings"`
}

// NamedCountDTO сущность с количеством бронирований
type NamedCountDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryRevenueDTO выручка категории услуг
type CategoryRevenueDTO struct {
	CategoryID int64   `json:"categoryId"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percent    float64 `json:"percent"`
}

// WeekdayCountDTO бронирования в день недели
type WeekdayCountDTO struct {
	Weekday int     `json:"weekday"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// AnalyticsResponse агрегаты страницы аналитики
type AnalyticsResponse struct {
	BookingsThisWeek   int                  `json:"bookingsThisWeek"`
	AverageRating      float64              `json:"averageRating"`
	MostPopularService *NamedCountDTO       `json:"mostPopularService"`
	TopStylist         *NamedCountDTO       `json:"topStylist"`
	RevenueByCategory  []CategoryRevenueDTO `json:"revenueByCategory"`
	BookingsByWeekday  []WeekdayCountDTO    `json:"bookingsByWeekday"`
}

// FromDomainDashboard конвертирует domain модель в DTO
func FromDomainDashboard(s domain.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalBookings:  s.TotalBookings,
		TodayBookings:  s.TodayBookings,
		MonthRevenue:   s.MonthRevenue,
		UniqueClients:  s.UniqueClients,
		RecentBookings: bookingmodels.FromDomainBookingList(s.RecentBookings).Bookings,
	}
}

// FromDomainAnalytics конвертирует domain модель в DTO
func FromDomainAnalytics(a domain.Analytics) *AnalyticsResponse {
	resp := &AnalyticsResponse{
		BookingsThisWeek:   a.BookingsThisWeek,
		AverageRating:      a.AverageRating,
		MostPopularService: fromNamedCount(a.MostPopularService),
		TopStylist:         fromNamedCount(a.TopStylist),
		RevenueByCategory:  make([]CategoryRevenueDTO, 0, len(a.RevenueByCategory)),
		BookingsByWeekday:  make([]WeekdayCountDTO, 0, len(a.BookingsByWeekday)),
	}
	for _, c := range a.RevenueByCategory {
		resp.RevenueByCategory = append(resp.RevenueByCategory, CategoryRevenueDTO(c))
	}
	for _, w := range a.BookingsByWeekday {
		resp.BookingsByWeekday = append(resp.BookingsByWeekday, WeekdayCountDTO(w))
	}
	return resp
}

func fromNamedCount(n *domain.NamedCount) *NamedCountDTO {
	if n == nil {
		return nil
	}
	return &NamedCountDTO{ID: n.ID, Name: n.Name, Count: n.Count}
}
