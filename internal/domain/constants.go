package domain

// Slot generation
const (
	// SlotStepMinutes шаг курсора генератора слотов, не зависит от длительности услуг
	SlotStepMinutes = 30

	// GeneralConsultationMinutes длительность записи без выбранных услуг
	GeneralConsultationMinutes = 60

	// AdvanceBookingDays горизонт записи: дни 1..30 от сегодняшнего
	AdvanceBookingDays = 30
)

// Business validation constants
const (
	MaxServicesPerBooking  = 10
	MaxNotesLength         = 500
	MaxGuestNameLength     = 100
	MaxReviewCommentLength = 1000
	MinRating              = 1
	MaxRating              = 5
	MinPhoneDigits         = 7
	MaxPhoneDigits         = 15
	MaxUserNameLength      = 100
	RecentBookingsLimit    = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InvoiceNumberPrefix префикс номера счёта (INV-000042)
const InvoiceNumberPrefix = "INV-"
