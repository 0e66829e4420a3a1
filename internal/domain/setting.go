package domain

// Setting keys
const (
	SettingBookingEnabled = "bookingEnabled"
)

// DefaultBookingEnabled value used when the setting row does not exist yet
const DefaultBookingEnabled = true
