package models

import "time"

// Invoice is a single bill as shown in the bills view.
type Invoice struct {
	ID          string
	Number      string
	AmountCents int64
	Currency    string
	IssuedAt    time.Time
	DueAt       time.Time
	Paid        bool
}
