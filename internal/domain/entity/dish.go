package entity

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Dish (prato) is a sellable menu item owned by exactly one supplier.
// Category is a free-text string, not an enum; the public catalog derives the
// category filter list from the distinct values in use.
type Dish struct {
	ID          uuid.UUID
	SupplierID  uuid.UUID // Owning supplier; only the owner may mutate the dish.
	Name        string
	Description string
	Price       float64
	Image       string // Optional image URL.
	Category    string
	Available   bool // Availability toggle controlled by the owner.
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *Supplier // Populated on catalog reads.
	Ratings  []*Rating // Populated on catalog reads.
}

// AverageRating returns the arithmetic mean of the attached ratings' scores,
// full precision, 0 when there are none. Display rounding is the client's job.
func (d *Dish) AverageRating() float64 {
	if len(d.Ratings) == 0 {
		return 0
	}

	var sum int
	for _, r := range d.Ratings {
		sum += r.Score
	}

	return float64(sum) / float64(len(d.Ratings))
}

// RatingCount returns the number of attached ratings.
func (d *Dish) RatingCount() int {
	return len(d.Ratings)
}

func encodeOrderMessage(dishName string) string {
	return url.QueryEscape("Olá! Gostaria de pedir o prato: " + dishName)
}
