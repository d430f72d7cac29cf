package seed

import "github.com/shopspring/decimal"

// Sample catálogo de demostración: 12 categorías en 3 niveles y 26 productos.
func Sample() Catalog {
	return Catalog{
		Categories: []Category{
			{"CAT001", "Electronics", "All electronic products", ""},
			{"CAT002", "Home & Garden", "Home and garden products", ""},
			{"CAT003", "Sports & Outdoors", "Sports and outdoor equipment", ""},
			{"CAT101", "Computers", "Computing devices", "CAT001"},
			{"CAT102", "Mobile Devices", "Smartphones and tablets", "CAT001"},
			{"CAT103", "Electronics Accessories", "Cables, chargers, cases", "CAT001"},
			{"CAT201", "Furniture", "Home and office furniture", "CAT002"},
			{"CAT202", "Kitchenware", "Kitchen appliances and tools", "CAT002"},
			{"CAT1011", "Laptops", "Portable computers", "CAT101"},
			{"CAT1012", "Desktops", "Desktop computers", "CAT101"},
			{"CAT1021", "Smartphones", "Mobile phones", "CAT102"},
			{"CAT1022", "Tablets", "Tablet devices", "CAT102"},
		},
		Products: []Product{
			p("PROD001", `MacBook Pro 16"`, "High-performance laptop for professionals", "2499.99", 25, "CAT1011"),
			p("PROD002", "Dell XPS 15", "Premium Windows laptop", "1899.99", 35, "CAT1011"),
			p("PROD003", "HP Pavilion", "Budget-friendly laptop", "799.99", 50, "CAT1011"),
			p("PROD004", "Lenovo ThinkPad X1", "Business laptop", "1599.99", 30, "CAT1011"),
			p("PROD005", `iMac 24"`, "All-in-one desktop computer", "1799.99", 20, "CAT1012"),
			p("PROD006", "Gaming PC RTX 4080", "High-end gaming desktop", "2999.99", 15, "CAT1012"),
			p("PROD007", "Dell OptiPlex", "Business desktop", "899.99", 40, "CAT1012"),
			p("PROD008", "iPhone 15 Pro", "Latest Apple smartphone", "1199.99", 100, "CAT1021"),
			p("PROD009", "Samsung Galaxy S24", "Flagship Android phone", "999.99", 120, "CAT1021"),
			p("PROD010", "Google Pixel 8", "Pure Android experience", "799.99", 80, "CAT1021"),
			p("PROD011", "OnePlus 12", "Flagship killer smartphone", "699.99", 60, "CAT1021"),
			p("PROD012", `iPad Pro 12.9"`, "Professional tablet", "1299.99", 45, "CAT1022"),
			p("PROD013", "Samsung Galaxy Tab S9", "Android tablet", "849.99", 55, "CAT1022"),
			p("PROD014", "iPad Air", "Mid-range iPad", "599.99", 70, "CAT1022"),
			p("PROD015", "USB-C Cable", "Fast charging cable", "19.99", 500, "CAT103"),
			p("PROD016", "Wireless Mouse", "Ergonomic wireless mouse", "49.99", 200, "CAT103"),
			p("PROD017", "Phone Case", "Protective phone case", "29.99", 300, "CAT103"),
			p("PROD018", "Laptop Bag", "Professional laptop carrying case", "79.99", 150, "CAT103"),
			p("PROD019", "Office Desk", "Ergonomic office desk", "399.99", 30, "CAT201"),
			p("PROD020", "Gaming Chair", "Comfortable gaming chair", "299.99", 40, "CAT201"),
			p("PROD021", "Bookshelf", "5-tier bookshelf", "149.99", 50, "CAT201"),
			p("PROD022", "Blender Pro", "High-speed blender", "129.99", 60, "CAT202"),
			p("PROD023", "Coffee Maker", "Automatic coffee maker", "89.99", 75, "CAT202"),
			p("PROD024", "Knife Set", "Professional knife set", "199.99", 45, "CAT202"),
			p("PROD025", "Yoga Mat", "Non-slip yoga mat", "39.99", 100, "CAT003"),
			p("PROD026", "Dumbbells Set", "Adjustable dumbbells", "149.99", 50, "CAT003"),
		},
	}
}

func p(code, name, desc, price string, qty int, category string) Product {
	return Product{
		Code:         code,
		Name:         name,
		Description:  desc,
		Price:        decimal.RequireFromString(price),
		Quantity:     qty,
		CategoryCode: category,
	}
}
