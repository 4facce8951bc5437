package domain

// Stylist is a salon specialist clients book with
type Stylist struct {
	ID          int64
	Name        string
	Role        string
	Bio         string
	Specialties []string
	ServiceIDs  []int64
	Rating      float64
	ReviewCount int
	Instagram   *string
	Schedule    []WeeklyAvailability
}

// OffersService returns true if the stylist performs the service
func (s *Stylist) OffersService(serviceID int64) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
