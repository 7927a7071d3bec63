package shared

import "time"

// Minimal snapshots for command read operations

type CredentialsSnapshot struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

type CouponSnapshot struct {
	ID        int64
	CompanyID int64
	Title     string
	Type      string
	StartDate time.Time
	EndDate   time.Time
	Price     float64
	Amount    int
}
