package catalog

// DefaultItems is the built-in ElectroMart demo catalog, used when the
// service config does not supply one.
func DefaultItems() []Item {
	return []Item{
		// Smartphones
		{Id: "1", Name: "iPhone 16 Pro Max", Description: "Latest iPhone with A18 chip, 8K video, 1TB storage", Price: 1299.99, Category: "Smartphones", Emoji: "📱"},
		{Id: "2", Name: "Samsung Galaxy Fold 6", Description: "Foldable display, 512GB storage, 108MP camera", Price: 1799.99, Category: "Smartphones", Emoji: "📱"},
		{Id: "3", Name: "Google Pixel 9 Pro", Description: "Advanced AI camera, 256GB storage, Pure Android", Price: 999.99, Category: "Smartphones", Emoji: "📱"},
		{Id: "4", Name: "OnePlus 13 Pro", Description: "Snapdragon 8 Gen 3, 256GB storage, 120W charging", Price: 899.99, Category: "Smartphones", Emoji: "📱"},
		{Id: "5", Name: "Xiaomi 15 Ultra", Description: "1-inch camera sensor, 512GB storage, 120W charging", Price: 1099.99, Category: "Smartphones", Emoji: "📱"},

		// Laptops
		{Id: "6", Name: "MacBook Pro M3 Max", Description: "16-inch, 32GB RAM, 1TB SSD, Space Black", Price: 2499.99, Category: "Laptops", Emoji: "💻"},
		{Id: "7", Name: "Dell XPS 16", Description: "Intel Core i9, 32GB RAM, RTX 4070, 1TB SSD", Price: 2299.99, Category: "Laptops", Emoji: "💻"},
		{Id: "8", Name: "Lenovo ThinkPad X1 Carbon", Description: "14-inch, Intel Core i7, 16GB RAM, 512GB SSD", Price: 1699.99, Category: "Laptops", Emoji: "💻"},
		{Id: "9", Name: "ASUS ROG Zephyrus", Description: "AMD Ryzen 9, RTX 4080, 32GB RAM, 2TB SSD", Price: 2799.99, Category: "Laptops", Emoji: "💻"},
		{Id: "10", Name: "HP Spectre x360", Description: "2-in-1, OLED display, Intel Core i7, 16GB RAM", Price: 1499.99, Category: "Laptops", Emoji: "💻"},

		// Headphones
		{Id: "11", Name: "Apple AirPods Pro 3", Description: "Active noise cancellation, Spatial Audio, USB-C", Price: 279.99, Category: "Headphones", Emoji: "🎧"},
		{Id: "12", Name: "Sony WH-1000XM6", Description: "Best-in-class ANC, 40hr battery, Hi-Res Audio", Price: 399.99, Category: "Headphones", Emoji: "🎧"},
		{Id: "13", Name: "Bose QuietComfort Ultra", Description: "Premium ANC, Spatial Audio, 24hr battery", Price: 329.99, Category: "Headphones", Emoji: "🎧"},
		{Id: "14", Name: "Sennheiser Momentum 5", Description: "Audiophile quality, ANC, 60hr battery life", Price: 349.99, Category: "Headphones", Emoji: "🎧"},
		{Id: "15", Name: "Samsung Galaxy Buds3 Pro", Description: "360 Audio, ANC, 30hr total battery life", Price: 229.99, Category: "Headphones", Emoji: "🎧"},
	}
}
