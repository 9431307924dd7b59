package dataset

import "github.com/trendai/demand-insights-api/internal/domain"

// Catálogo base de produtos; o restante é gerado até atingir 500.
var seedProducts = []domain.Product{
	// Electronics
	{ID: "ELEC001", Name: "Wireless Bluetooth Headphones", Category: "Electronics", Price: 89.99, CurrentStock: 245, ReorderPoint: 50, Supplier: "TechCorp", Seasonality: domain.SeasonalityHigh, TrendScore: 8.5},
	{ID: "ELEC002", Name: "Smart Fitness Tracker", Category: "Electronics", Price: 129.99, CurrentStock: 180, ReorderPoint: 40, Supplier: "FitTech", Seasonality: domain.SeasonalityMedium, TrendScore: 9.2},
	{ID: "ELEC003", Name: "4K Webcam", Category: "Electronics", Price: 199.99, CurrentStock: 95, ReorderPoint: 25, Supplier: "VisionTech", Seasonality: domain.SeasonalityLow, TrendScore: 7.8},
	{ID: "ELEC004", Name: "Portable Power Bank 20000mAh", Category: "Electronics", Price: 45.99, CurrentStock: 320, ReorderPoint: 75, Supplier: "PowerPlus", Seasonality: domain.SeasonalityMedium, TrendScore: 8.1},
	{ID: "ELEC005", Name: "Gaming Mechanical Keyboard", Category: "Electronics", Price: 159.99, CurrentStock: 140, ReorderPoint: 30, Supplier: "GameGear", Seasonality: domain.SeasonalityHigh, TrendScore: 8.9},

	// Fashion
	{ID: "FASH001", Name: "Premium Cotton T-Shirt", Category: "Fashion", Price: 24.99, CurrentStock: 450, ReorderPoint: 100, Supplier: "StyleCo", Seasonality: domain.SeasonalityHigh, TrendScore: 7.5},
	{ID: "FASH002", Name: "Denim Skinny Jeans", Category: "Fashion", Price: 79.99, CurrentStock: 280, ReorderPoint: 60, Supplier: "DenimWorks", Seasonality: domain.SeasonalityMedium, TrendScore: 8.3},
	{ID: "FASH003", Name: "Winter Wool Coat", Category: "Fashion", Price: 199.99, CurrentStock: 85, ReorderPoint: 20, Supplier: "WarmWear", Seasonality: domain.SeasonalityHigh, TrendScore: 9.1},
	{ID: "FASH004", Name: "Athletic Running Shoes", Category: "Fashion", Price: 119.99, CurrentStock: 195, ReorderPoint: 45, Supplier: "SportStep", Seasonality: domain.SeasonalityMedium, TrendScore: 8.7},
	{ID: "FASH005", Name: "Leather Crossbody Bag", Category: "Fashion", Price: 89.99, CurrentStock: 165, ReorderPoint: 35, Supplier: "LeatherCraft", Seasonality: domain.SeasonalityLow, TrendScore: 7.9},

	// Home & Garden
	{ID: "HOME001", Name: "Smart LED Light Bulbs (4-pack)", Category: "Home & Garden", Price: 39.99, CurrentStock: 380, ReorderPoint: 80, Supplier: "SmartHome", Seasonality: domain.SeasonalityLow, TrendScore: 8.4},
	{ID: "HOME002", Name: "Ceramic Plant Pots Set", Category: "Home & Garden", Price: 29.99, CurrentStock: 220, ReorderPoint: 50, Supplier: "GardenPlus", Seasonality: domain.SeasonalityHigh, TrendScore: 7.6},
	{ID: "HOME003", Name: "Memory Foam Pillow", Category: "Home & Garden", Price: 49.99, CurrentStock: 190, ReorderPoint: 40, Supplier: "SleepWell", Seasonality: domain.SeasonalityLow, TrendScore: 8.2},
	{ID: "HOME004", Name: "Stainless Steel Cookware Set", Category: "Home & Garden", Price: 249.99, CurrentStock: 65, ReorderPoint: 15, Supplier: "KitchenPro", Seasonality: domain.SeasonalityMedium, TrendScore: 8.8},
	{ID: "HOME005", Name: "Bamboo Cutting Board", Category: "Home & Garden", Price: 34.99, CurrentStock: 275, ReorderPoint: 60, Supplier: "EcoKitchen", Seasonality: domain.SeasonalityMedium, TrendScore: 7.7},

	// Health & Beauty
	{ID: "HEAL001", Name: "Vitamin D3 Supplements", Category: "Health & Beauty", Price: 19.99, CurrentStock: 420, ReorderPoint: 90, Supplier: "HealthFirst", Seasonality: domain.SeasonalityHigh, TrendScore: 8.6},
	{ID: "HEAL002", Name: "Organic Face Moisturizer", Category: "Health & Beauty", Price: 34.99, CurrentStock: 185, ReorderPoint: 40, Supplier: "NaturalGlow", Seasonality: domain.SeasonalityMedium, TrendScore: 8.0},
	{ID: "HEAL003", Name: "Electric Toothbrush", Category: "Health & Beauty", Price: 79.99, CurrentStock: 125, ReorderPoint: 30, Supplier: "DentalCare", Seasonality: domain.SeasonalityLow, TrendScore: 8.5},
	{ID: "HEAL004", Name: "Protein Powder Vanilla", Category: "Health & Beauty", Price: 49.99, CurrentStock: 240, ReorderPoint: 55, Supplier: "FitNutrition", Seasonality: domain.SeasonalityMedium, TrendScore: 9.0},
	{ID: "HEAL005", Name: "Essential Oil Diffuser", Category: "Health & Beauty", Price: 59.99, CurrentStock: 160, ReorderPoint: 35, Supplier: "AromaLife", Seasonality: domain.SeasonalityHigh, TrendScore: 7.8},

	// Sports & Outdoors
	{ID: "SPOR001", Name: "Yoga Mat Premium", Category: "Sports & Outdoors", Price: 39.99, CurrentStock: 290, ReorderPoint: 65, Supplier: "YogaZen", Seasonality: domain.SeasonalityMedium, TrendScore: 8.3},
	{ID: "SPOR002", Name: "Camping Tent 4-Person", Category: "Sports & Outdoors", Price: 199.99, CurrentStock: 75, ReorderPoint: 20, Supplier: "OutdoorGear", Seasonality: domain.SeasonalityHigh, TrendScore: 8.9},
	{ID: "SPOR003", Name: "Resistance Bands Set", Category: "Sports & Outdoors", Price: 24.99, CurrentStock: 350, ReorderPoint: 75, Supplier: "FitEquip", Seasonality: domain.SeasonalityLow, TrendScore: 8.1},
	{ID: "SPOR004", Name: "Water Bottle Insulated", Category: "Sports & Outdoors", Price: 29.99, CurrentStock: 410, ReorderPoint: 85, Supplier: "HydroTech", Seasonality: domain.SeasonalityMedium, TrendScore: 7.9},
	{ID: "SPOR005", Name: "Hiking Backpack 40L", Category: "Sports & Outdoors", Price: 149.99, CurrentStock: 110, ReorderPoint: 25, Supplier: "TrailMaster", Seasonality: domain.SeasonalityHigh, TrendScore: 8.7},
}

var generatedCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Health & Beauty",
	"Sports & Outdoors",
}

var generatedSuppliers = []string{
	"TechCorp",
	"StyleCo",
	"SmartHome",
	"HealthFirst",
	"OutdoorGear",
}

var salesChannels = []domain.Channel{
	domain.ChannelOnline,
	domain.ChannelRetail,
	domain.ChannelWholesale,
}

var salesRegions = []string{
	"North America",
	"Europe",
	"Asia Pacific",
	"Latin America",
	"Middle East & Africa",
}
