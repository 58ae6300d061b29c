package catalog

import "github.com/shopspring/decimal"

// Default returns the built-in Gridwear catalog: the five storefront
// categories and the launch product line. Used when no catalog file is
// configured.
func Default() *Catalog {
	c, err := New(defaultCategories(), defaultProducts())
	if err != nil {
		// The seed data is fixed at compile time, so this only fires on a
		// broken edit to the tables below.
		panic("catalog: invalid seed data: " + err.Error())
	}
	return c
}

func defaultCategories() []Category {
	return []Category{
		{ID: "tees", Name: "Tees", Description: "Racing-inspired graphic tees", Image: "🏎️", Clickable: true},
		{ID: "jackets", Name: "Jackets", Description: "Premium racing jackets", Image: "🧥", Clickable: false},
		{ID: "caps", Name: "Caps", Description: "F1 team caps & helmets", Image: "🧢", Clickable: false},
		{ID: "accessories", Name: "Accessories", Description: "Racing gear & accessories", Image: "⚡", Clickable: false},
		{ID: "limited", Name: "Limited", Description: "Exclusive limited editions", Image: "💎", Clickable: false},
	}
}

func defaultProducts() []Product {
	price := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	return []Product{
		{ID: 1, Name: "F1 Racing Jacket", Price: price(299), Image: "/images/jacket.jpg", Category: "jackets",
			Description: "Premium racing jacket with authentic F1 styling"},
		{ID: 2, Name: "Speed Demon Hoodie", Price: price(149), Image: "/images/hoodie.jpg", Category: "hoodies",
			Description: "Comfortable hoodie with racing graphics"},
		{ID: 3, Name: "Circuit Tee", Price: price(79), Image: "/images/tee.jpg", Category: "tees",
			Description: "Classic racing tee with iconic circuit design"},
		{ID: 4, Name: "Monaco Grand Prix Tee", Price: price(89), Image: "/images/monaco-tee.jpg", Category: "tees",
			Description: "Monaco GP commemorative t-shirt with premium finish"},
		{ID: 5, Name: "Silverstone Vintage Tee", Price: price(85), Image: "/images/silverstone-tee.jpg", Category: "tees",
			Description: "Vintage Silverstone circuit design in premium cotton"},
		{ID: 6, Name: "Formula Speed Tee", Price: price(75), Image: "/images/speed-tee.jpg", Category: "tees",
			Description: "Bold speed-inspired graphics with racing stripes"},
		{ID: 7, Name: "F1 Championship Tee", Price: price(95), Image: "/images/championship-tee.jpg", Category: "tees",
			Description: "Limited edition championship winner design"},
		{ID: 8, Name: "Pit Stop Crew Tee", Price: price(82), Image: "/images/pitstop-tee.jpg", Category: "tees",
			Description: "Professional pit crew inspired design"},
		{ID: 9, Name: "Racing Legends Tee", Price: price(88), Image: "/images/legends-tee.jpg", Category: "tees",
			Description: "Tribute to F1 racing legends throughout history"},
		{ID: 10, Name: "Velocity Black Tee", Price: price(79), Image: "/images/velocity-tee.jpg", Category: "tees",
			Description: "Sleek black tee with velocity-inspired graphics"},
		{ID: 11, Name: "Checkered Flag Tee", Price: price(73), Image: "/images/checkered-tee.jpg", Category: "tees",
			Description: "Classic checkered flag pattern in modern style"},
	}
}
