package domain

import "time"

// Default business values, overridable from config
const (
	DefaultSameDayLeadTime      = 6 * time.Hour
	DefaultOTPCooldown          = 60 * time.Second
	DefaultOTPTTL               = 5 * time.Minute
	DefaultVerificationTokenTTL = 15 * time.Minute
	DefaultAdminTokenTTL        = 24 * time.Hour
	DefaultActionLinkTTL        = 72 * time.Hour
	DefaultAllowedEmailDomain   = "mietjammu.in"
	OTPLength                   = 6
)

// Business validation constants
const (
	MaxStudentNameLength = 100
	MaxTeamMembersLength = 500
	MaxCourtNameLength   = 100
)

// Time format constants
const (
	TimeFormat    = "15:04"      // HH:MM
	DateFormat    = "2006-01-02" // YYYY-MM-DD
	AltDateFormat = "02-01-2006" // DD-MM-YYYY, accepted on input only
)
