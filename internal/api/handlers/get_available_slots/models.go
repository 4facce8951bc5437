package get_available_slots

import (
	"time"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Mila-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	StylistID       int64           `json:"stylistId"`
	ServiceIDs      []int64         `json:"serviceIds"`
	DurationMinutes int             `json:"durationMinutes"`
	TotalPrice      float64         `json:"totalPrice"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного окна
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}

	serviceIDs := resp.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StylistID:       resp.StylistID,
		ServiceIDs:      serviceIDs,
		DurationMinutes: resp.DurationMinutes,
		TotalPrice:      resp.TotalPrice,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(stylistID int64, serviceIDs []int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StylistID:  stylistID,
		ServiceIDs: serviceIDs,
		Date:       date,
	}, nil
}
