package domain

import "time"

// AccessAttempt is an ephemeral throttling record. Rows older than the
// throttle window are purged on every read or write; duplicates are expected
// and counted.
type AccessAttempt struct {
	IP        string
	Endpoint  string
	CreatedAt time.Time
}
