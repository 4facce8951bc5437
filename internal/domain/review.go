package domain

import "time"

// Review is a client's rating of a completed booking
type Review struct {
	ID         int64
	BookingID  int64
	ClientID   int64
	ClientName string
	StylistID  int64
	ServiceID  *int64
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
