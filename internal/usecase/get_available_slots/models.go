package get_available_slots

import (
	"time"

	"github.com/m04kA/Mila-BookingService/pkg/types"
)

// Request модель запроса на получение слотов стилиста
type Request struct {
	StylistID  int64     // ID стилиста
	ServiceIDs []int64   // Выбранные услуги; пусто - общая консультация
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time
	StylistID       int64
	ServiceIDs      []int64
	DurationMinutes int     // Суммарная длительность выбранных услуг
	TotalPrice      float64 // Суммарная цена выбранных услуг
	Slots           []Slot
}

// Slot модель временного окна
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
