package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxRecurringOccurrences = 366
	MaxCalendarRangeDays    = 92
	MaxOwnerNameLength      = 120
)

// BlockingStatuses statuses that occupy a time window
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
