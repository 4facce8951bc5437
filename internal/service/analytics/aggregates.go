package analytics

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// Dashboard считает показатели главной страницы администратора.
// today - полночь текущего дня в часовом поясе салона
func Dashboard(bookings []*domain.Booking, today time.Time) domain.DashboardStats {
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	stats := domain.DashboardStats{TotalBookings: len(bookings)}
	clients := make(map[string]struct{})

	for _, b := range bookings {
		date := dateIn(b.BookingDate, today.Location())

		if domain.SameDate(date, today) {
			stats.TodayBookings++
		}
		if b.Status.IsRevenue() && !date.Before(monthStart) && date.Before(nextMonth) {
			stats.MonthRevenue += b.TotalPrice
		}
		if !b.IsCancelled() {
			clients[clientKey(b)] = struct{}{}
		}
	}
	stats.UniqueClients = len(clients)

	return stats
}

// Compute считает агрегаты страницы аналитики. Пустые входные данные
// дают нули и пустые списки, а не ошибку
func Compute(
	bookings []*domain.Booking,
	reviews []*domain.Review,
	services []*domain.Service,
	stylists []*domain.Stylist,
	categories []*domain.ServiceCategory,
	today time.Time,
) domain.Analytics {
	return domain.Analytics{
		BookingsThisWeek:   bookingsThisWeek(bookings, today),
		AverageRating:      averageRating(reviews),
		MostPopularService: mostPopularService(bookings, services),
		TopStylist:         topStylist(bookings, stylists),
		RevenueByCategory:  revenueByCategory(bookings, services, categories),
		BookingsByWeekday:  bookingsByWeekday(bookings),
	}
}

// bookingsThisWeek бронирования с понедельника по воскресенье текущей недели
func bookingsThisWeek(bookings []*domain.Booking, today time.Time) int {
	offset := (int(today.Weekday()) + 6) % 7
	monday := time.Date(today.Year(), today.Month(), today.Day()-offset, 0, 0, 0, 0, today.Location())
	nextMonday := monday.AddDate(0, 0, 7)

	count := 0
	for _, b := range bookings {
		date := dateIn(b.BookingDate, today.Location())
		if !date.Before(monday) && date.Before(nextMonday) {
			count++
		}
	}
	return count
}

// averageRating средняя оценка с одним знаком после запятой
func averageRating(reviews []*domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

func mostPopularService(bookings []*domain.Booking, services []*domain.Service) *domain.NamedCount {
	counts := make(map[int64]int)
	for _, b := range bookings {
		for _, id := range b.ServiceIDs {
			counts[id]++
		}
	}

	id, count, ok := topByCount(counts)
	if !ok {
		return nil
	}
	for _, s := range services {
		if s.ID == id {
			return &domain.NamedCount{ID: id, Name: s.Name, Count: count}
		}
	}
	return nil
}

func topStylist(bookings []*domain.Booking, stylists []*domain.Stylist) *domain.NamedCount {
	counts := make(map[int64]int)
	for _, b := range bookings {
		counts[b.StylistID]++
	}

	id, count, ok := topByCount(counts)
	if !ok {
		return nil
	}
	for _, s := range stylists {
		if s.ID == id {
			return &domain.NamedCount{ID: id, Name: s.Name, Count: count}
		}
	}
	return nil
}

// revenueByCategory делит стоимость бронирования поровну между его услугами
func revenueByCategory(
	bookings []*domain.Booking,
	services []*domain.Service,
	categories []*domain.ServiceCategory,
) []domain.CategoryRevenue {
	categoryOf := make(map[int64]int64, len(services))
	for _, s := range services {
		categoryOf[s.ID] = s.CategoryID
	}

	revenue := make(map[int64]float64, len(categories))
	for _, b := range bookings {
		if !b.Status.IsRevenue() || len(b.ServiceIDs) == 0 {
			continue
		}
		share := b.TotalPrice / float64(len(b.ServiceIDs))
		for _, id := range b.ServiceIDs {
			if categoryID, ok := categoryOf[id]; ok {
				revenue[categoryID] += share
			}
		}
	}

	maxRevenue := 1.0
	for _, c := range categories {
		maxRevenue = math.Max(maxRevenue, revenue[c.ID])
	}

	result := make([]domain.CategoryRevenue, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.CategoryRevenue{
			CategoryID: c.ID,
			Name:       c.Name,
			Revenue:    revenue[c.ID],
			Percent:    math.Round(revenue[c.ID] / maxRevenue * 100),
		})
	}
	return result
}

// bookingsByWeekday количество бронирований по дням недели, с понедельника.
// Weekday в результате: 1 = понедельник ... 0 = воскресенье
func bookingsByWeekday(bookings []*domain.Booking) []domain.WeekdayCount {
	var counts [7]int
	for _, b := range bookings {
		counts[(int(b.BookingDate.Weekday())+6)%7]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	result := make([]domain.WeekdayCount, 0, len(counts))
	for i, c := range counts {
		result = append(result, domain.WeekdayCount{
			Weekday: (i + 1) % 7,
			Count:   c,
			Percent: math.Round(float64(c) / float64(maxCount) * 100),
		})
	}
	return result
}

// topByCount максимум по количеству; при равенстве побеждает меньший ID
func topByCount(counts map[int64]int) (int64, int, bool) {
	if len(counts) == 0 {
		return 0, 0, false
	}
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids[0], counts[ids[0]], true
}

// clientKey идентифицирует клиента: аккаунт, затем телефон или имя гостя
func clientKey(b *domain.Booking) string {
	switch {
	case b.ClientID != nil:
		return "c:" + strconv.FormatInt(*b.ClientID, 10)
	case b.GuestPhone != nil && *b.GuestPhone != "":
		return "p:" + *b.GuestPhone
	case b.GuestName != nil && *b.GuestName != "":
		return "n:" + *b.GuestName
	default:
		return "b:" + strconv.FormatInt(b.ID, 10)
	}
}

// dateIn переносит календарную дату бронирования в часовой пояс loc
func dateIn(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
