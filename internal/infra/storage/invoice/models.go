package invoice

import (
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// Uninvoiced бронирование без счёта, с именем клиента или гостя
type Uninvoiced struct {
	BookingID  int64
	ClientName string
	ServiceIDs []int64
	Date       time.Time
	Amount     float64
	Status     domain.BookingStatus
}
