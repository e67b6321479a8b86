package catalog

import "github.com/shopspring/decimal"

func seedProducts() []Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []Product{
		{
			ID:          1,
			Name:        "Modern Desk Lamp",
			Price:       price("89.99"),
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400&h=400&fit=crop",
			Description: "Elegant desk lamp with adjustable brightness",
			Category:    "Lighting",
			VendorID:    "vendor1",
		},
		{
			ID:          2,
			Name:        "Ergonomic Office Chair",
			Price:       price("299.99"),
			Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=400&fit=crop",
			Description: "Comfortable office chair with lumbar support",
			Category:    "Furniture",
			VendorID:    "vendor2",
		},
		{
			ID:          3,
			Name:        "Wireless Bluetooth Speaker",
			Price:       price("149.99"),
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=400&fit=crop",
			Description: "Portable speaker with crystal clear sound",
			Category:    "Electronics",
			VendorID:    "vendor1",
		},
		{
			ID:          4,
			Name:        "Designer Coffee Mug",
			Price:       price("24.99"),
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
			Description: "Ceramic mug with unique geometric design",
			Category:    "Kitchen",
			VendorID:    "vendor3",
		},
		{
			ID:          5,
			Name:        "Wall Art Canvas",
			Price:       price("79.99"),
			Image:       "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=400&fit=crop",
			Description: "Abstract wall art to enhance your space",
			Category:    "Decor",
			VendorID:    "vendor2",
		},
		{
			ID:          6,
			Name:        "Smart Home Hub",
			Price:       price("199.99"),
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
			Description: "Control your home with voice commands",
			Category:    "Electronics",
			VendorID:    "vendor1",
		},
		{
			ID:          7,
			Name:        "Plant Stand",
			Price:       price("45.99"),
			Image:       "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=400&h=400&fit=crop",
			Description: "Modern plant stand for indoor greenery",
			Category:    "Decor",
			VendorID:    "vendor3",
		},
		{
			ID:          8,
			Name:        "Kitchen Mixer",
			Price:       price("129.99"),
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=400&fit=crop",
			Description: "Professional kitchen mixer for baking",
			Category:    "Kitchen",
			VendorID:    "vendor2",
		},
	}
}
