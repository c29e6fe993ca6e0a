package models

import "time"

// Invoice is a billing document issued to a user. StorageKey points at the
// rendered PDF in object storage; clients get to it via presigned URLs only.
type Invoice struct {
	ID          string
	UserID      string
	Number      string
	AmountCents int64
	Currency    string
	IssuedAt    time.Time
	DueAt       time.Time
	Paid        bool
	StorageKey  string
}
