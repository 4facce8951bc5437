package domain

// ServiceCategory groups services (hair, nails, skin, makeup)
type ServiceCategory struct {
	ID          int64
	Slug        string
	Name        string
	Description string
}

// Service is a bookable salon service
type Service struct {
	ID              int64
	CategoryID      int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
}

// BookingTotals sums duration and price of the selected services.
// An empty selection is a general consultation: fixed duration, no charge.
func BookingTotals(services []*Service) (durationMinutes int, price float64) {
	if len(services) == 0 {
		return GeneralConsultationMinutes, 0
	}
	for _, s := range services {
		durationMinutes += s.DurationMinutes
		price += s.Price
	}
	return durationMinutes, price
}
