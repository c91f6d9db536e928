package domain

import "time"

// Project is an optional grouping of tasks carrying billing metadata.
// Reporting may use HourlyRateCents for money-valued output; the core
// aggregation does not compute money itself.
type Project struct {
	ID          string
	UserID      string
	Name        string
	Description string
	ClientName  string

	Billable        bool
	HourlyRateCents *int

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
