package domain

import "time"

// Customer represents a studio customer keyed by the stable external identity
// (LINE user id or a generated guest identity)
//
// Lifecycle: created on the first successful submission, name/phone refreshed
// on every subsequent one. MemberCode is assigned once and never overwritten.
// IsBlacklisted is set only by the studio administrator, the booking flow
// reads it but never writes it.
type Customer struct {
	UserID        string
	Name          string
	Phone         string
	MemberCode    string
	IsBlacklisted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
