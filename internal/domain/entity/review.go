package entity

import "time"

// Review is a rating left on a product. Both references are nulled, never
// cascaded, when the product or user goes away.
type Review struct {
	ID        int64
	ProductID *int64
	UserID    *int64
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
