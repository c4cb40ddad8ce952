package application

import "github.com/devfood/foodcourt/internal/domain/entity"

// StarterCatalog returns the fixed menu inserted into an empty catalog.
func StarterCatalog() []entity.Product {
	return []entity.Product{
		{
			Name:        "Classic Burger",
			Description: "Beef patty, cheddar, lettuce, tomato and house sauce",
			Category:    "Burgers",
			Price:       18.90,
			Ingredients: []string{"bun", "beef patty", "cheddar", "lettuce", "tomato", "house sauce"},
			Available:   true,
		},
		{
			Name:        "Double Bacon Burger",
			Description: "Two beef patties, crispy bacon and smoked cheese",
			Category:    "Burgers",
			Price:       25.90,
			Ingredients: []string{"bun", "beef patty", "bacon", "smoked cheese", "barbecue sauce"},
			Available:   true,
		},
		{
			Name:        "Veggie Burger",
			Description: "Chickpea patty, grilled vegetables and vegan mayo",
			Category:    "Burgers",
			Price:       21.50,
			Ingredients: []string{"whole grain bun", "chickpea patty", "zucchini", "vegan mayo"},
			Available:   true,
		},
		{
			Name:        "French Fries",
			Description: "Crispy fries with sea salt",
			Category:    "Sides",
			Price:       9.90,
			Ingredients: []string{"potato", "sea salt"},
			Available:   true,
		},
		{
			Name:        "Onion Rings",
			Description: "Battered onion rings with ranch dip",
			Category:    "Sides",
			Price:       11.90,
			Ingredients: []string{"onion", "batter", "ranch"},
			Available:   true,
		},
		{
			Name:        "Cola",
			Description: "Soft drink 350ml can",
			Category:    "Drinks",
			Price:       6.00,
			Ingredients: []string{"cola"},
			Available:   true,
		},
		{
			Name:        "Orange Juice",
			Description: "Freshly squeezed orange juice 400ml",
			Category:    "Drinks",
			Price:       8.50,
			Ingredients: []string{"orange"},
			Available:   true,
		},
		{
			Name:        "Milkshake",
			Description: "Vanilla milkshake with whipped cream",
			Category:    "Desserts",
			Price:       14.00,
			Ingredients: []string{"milk", "vanilla ice cream", "whipped cream"},
			Available:   true,
		},
		{
			Name:        "Brownie",
			Description: "Chocolate brownie with nuts",
			Category:    "Desserts",
			Price:       10.50,
			Ingredients: []string{"chocolate", "flour", "nuts"},
			Available:   true,
		},
	}
}
