package model

import "time"

// Business is a restaurant tenant. OrderingEnabled is the subscription
// gate checked before any order is accepted.
type Business struct {
	ID              string
	Name            string
	OrderingEnabled bool
	CreatedAt       time.Time
}
