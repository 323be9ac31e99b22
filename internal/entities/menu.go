package entities

import "time"

type PizzaCategory string

const (
	CategoryClassic    PizzaCategory = "Classic"
	CategoryPremium    PizzaCategory = "Premium"
	CategoryVegetarian PizzaCategory = "Vegetarian"
	CategoryVegan      PizzaCategory = "Vegan"
	CategorySpicy      PizzaCategory = "Spicy"
)

type Pizza struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    PizzaCategory
	Ingredients []string
	Available   bool
	CreatedAt   time.Time
}
