package domain

import "time"

// DeviceSession is one logged-in device for one user. The registry holds at
// most one row per DeviceID; LastActiveAt and ExpiresAt mirror the issue and
// expiry timestamps of the most recently issued refresh token for the device.
type DeviceSession struct {
	DeviceID     string
	UserID       string
	IP           string
	Title        string
	LastActiveAt time.Time
	ExpiresAt    time.Time
}
