package domain

// DashboardStats summary for the admin home page
type DashboardStats struct {
	TotalBookings  int
	TodayBookings  int
	MonthRevenue   float64
	UniqueClients  int
	RecentBookings []*Booking
}

// NamedCount counts bookings for a named entity (service, stylist)
type NamedCount struct {
	ID    int64
	Name  string
	Count int
}

// CategoryRevenue revenue share of a service category.
// Percent is relative to the best-earning category.
type CategoryRevenue struct {
	CategoryID int64
	Name       string
	Revenue    float64
	Percent    float64
}

// WeekdayCount bookings per weekday, Monday first.
// Percent is relative to the busiest weekday.
type WeekdayCount struct {
	Weekday int
	Count   int
	Percent float64
}

// Analytics aggregates for the admin analytics page
type Analytics struct {
	BookingsThisWeek   int
	AverageRating      float64
	MostPopularService *NamedCount
	TopStylist         *NamedCount
	RevenueByCategory  []CategoryRevenue
	BookingsByWeekday  []WeekdayCount
}
