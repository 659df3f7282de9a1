package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDish_AverageRating(t *testing.T) {
	dish := &Dish{
		Ratings: []*Rating{
			{Score: 5},
			{Score: 4},
			{Score: 4},
		},
	}

	assert.InDelta(t, 13.0/3.0, dish.AverageRating(), 0.0001, "mean keeps full precision")
	assert.Equal(t, 3, dish.RatingCount())
}

func TestDish_AverageRating_NoRatings(t *testing.T) {
	dish := &Dish{}

	assert.Zero(t, dish.AverageRating())
	assert.Zero(t, dish.RatingCount())
}

func TestSupplier_OrderLink(t *testing.T) {
	supplier := &Supplier{WhatsApp: "5511999990000"}

	link := supplier.OrderLink("Salada Caesar")

	assert.Equal(t,
		"https://wa.me/5511999990000?text=Ol%C3%A1%21+Gostaria+de+pedir+o+prato%3A+Salada+Caesar",
		link,
	)
}

func TestValidScore(t *testing.T) {
	for score := MinRatingScore; score <= MaxRatingScore; score++ {
		assert.True(t, ValidScore(score))
	}

	assert.False(t, ValidScore(0))
	assert.False(t, ValidScore(6))
	assert.False(t, ValidScore(-3))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("fornecedor")
	assert.True(t, ok)
	assert.Equal(t, RoleSupplier, role)

	role, ok = ParseRole("cliente")
	assert.True(t, ok)
	assert.Equal(t, RoleCustomer, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
}
