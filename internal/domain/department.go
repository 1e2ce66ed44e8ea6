package domain

import "time"

// Department is an organizational unit identified by a human-assigned short
// code such as "SANITATION". The code is immutable after creation.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
