package seed

import (
	"math"
	"time"

	"bakery-catalog/internal/models"
)

// Catalog returns the sample products used to populate a fresh database.
// Every product without explicit weight options gets three derived
// variants so the storefront can show weight-specific pricing.
func Catalog() []models.Product {
	products := sampleProducts()
	for i := range products {
		if len(products[i].WeightOptions) == 0 {
			products[i].WeightOptions = deriveWeightOptions(products[i].Price)
		}
	}
	return products
}

// deriveWeightOptions scales the base price into 250g/500g/1kg variants.
func deriveWeightOptions(basePrice float64) []models.WeightOption {
	return []models.WeightOption{
		{Label: "250g", Price: math.Round(basePrice * 0.6)},
		{Label: "500g", Price: math.Round(basePrice)},
		{Label: "1kg", Price: math.Round(basePrice * 1.8)},
	}
}

func boolPtr(b bool) *bool { return &b }

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:             "Midnight Belgian Chocolate Cake",
			Category:         "Cakes",
			OriginalPrice:    3099,
			Price:            1799,
			Discount:         14,
			Rating:           4.9,
			Reviews:          189,
			Image:            "/Midnight-Belgian-Chocolate-Cake.png",
			ShortDescription: "Velvety dark chocolate sponge layered with espresso-infused ganache and cocoa nib crunch.",
			FullDescription:  "Our pastry chefs finish this showstopper with a glossy Belgian chocolate mirror glaze, gold-dusted cocoa nibs, and a hazelnut praline base for an irresistible texture contrast.",
			Features:         []string{"Single-origin Belgian cocoa", "Eggless option available", "Complimentary chocolate plaque", "Delivered in insulated packaging"},
			Specifications: map[string]string{
				"Size":        "1.8 kg",
				"Serves":      "14 people",
				"Allergens":   "Gluten, Dairy, Nuts",
				"Best Before": "48 hours refrigerated",
			},
			ArrivalDate:  time.Now(),
			IsFresh:      true,
			FreshnessTag: "Baked Today",
			Featured:     true,
			ProductType:  "just-arrived",
			InStock:      boolPtr(true),
		},
		{
			Name:             "Pistachio Raspberry Entremet",
			Category:         "Dessert",
			OriginalPrice:    1899,
			Price:            1599,
			Discount:         16,
			Rating:           4.8,
			Reviews:          121,
			Image:            "/Pistachio-Raspberry-Entremet.jpg",
			ShortDescription: "Layers of pistachio sponge, raspberry confit, and vanilla bean bavarois finished with a velvet spray.",
			FullDescription:  "Inspired by French patisserie, this entremet combines nutty pistachio mousse, tart raspberry gel, and crunchy pistachio feuilletine for a refined dessert experience.",
			Features:         []string{"Gluten-light sponge", "Vibrant raspberry heart", "Natural colouring only", "Gift-ready magnetic box"},
			Specifications: map[string]string{
				"Size":        "1.2 kg",
				"Serves":      "10 people",
				"Allergens":   "Nuts, Dairy, Eggs",
				"Best Before": "36 hours refrigerated",
			},
			ArrivalDate:  time.Now(),
			IsFresh:      true,
			FreshnessTag: "Chef's pick",
			Featured:     true,
			ProductType:  "just-arrived",
			InStock:      boolPtr(true),
		},
		{
			Name:             "Salted Caramel Eclair Box",
			Category:         "Pastries",
			OriginalPrice:    899,
			Price:            749,
			Discount:         17,
			Rating:           4.7,
			Reviews:          96,
			Image:            "/Salted-Caramel-Eclair-Box.jpg",
			ShortDescription: "Six choux eclairs filled with Madagascar vanilla cream and topped with salted caramel glaze.",
			FullDescription:  "Each eclair is piped to order, dipped in amber caramel, and garnished with house-made almond brittle for a delightful crunch in every bite.",
			Features:         []string{"Madagascar vanilla beans", "Small batch caramel", "Crunchy almond brittle topping", "Delivered chilled"},
			Specifications: map[string]string{
				"Pieces":      "6 eclairs",
				"Allergens":   "Gluten, Dairy, Eggs, Nuts",
				"Best Before": "24 hours refrigerated",
			},
			ArrivalDate:  time.Now(),
			IsFresh:      true,
			FreshnessTag: "Hand-piped",
			Featured:     true,
			ProductType:  "just-arrived",
			InStock:      boolPtr(true),
		},
		{
			Name:             "Sourdough Country Loaf",
			Category:         "Bread",
			OriginalPrice:    349,
			Price:            299,
			Discount:         14,
			Rating:           4.6,
			Reviews:          203,
			Image:            "/Sourdough-Country-Loaf.png",
			ShortDescription: "Naturally leavened loaf with a blistered crust and an open, tangy crumb.",
			FullDescription:  "Fermented for 36 hours with our decade-old starter, this loaf is baked on stone for a deep caramelised crust and keeps beautifully for days.",
			Features:         []string{"36-hour fermentation", "No commercial yeast", "Stone-baked", "Keeps 4 days"},
			Specifications: map[string]string{
				"Weight":      "750 g",
				"Allergens":   "Gluten",
				"Best Before": "4 days at room temperature",
			},
			ArrivalDate:  time.Now(),
			IsFresh:      true,
			FreshnessTag: "Out of the oven",
			Featured:     false,
			ProductType:  "just-baked",
			InStock:      boolPtr(true),
		},
		{
			Name:             "Butter Croissant Batch",
			Category:         "Pastries",
			OriginalPrice:    499,
			Price:            429,
			Discount:         14,
			Rating:           4.8,
			Reviews:          164,
			Image:            "/Butter-Croissant-Batch.jpg",
			ShortDescription: "Four flaky croissants laminated with cultured French butter.",
			FullDescription:  "Twenty-seven layers of dough and butter, proofed overnight and baked golden every morning. Best enjoyed warm within hours of pickup.",
			Features:         []string{"Cultured French butter", "27 laminated layers", "Baked every morning"},
			Specifications: map[string]string{
				"Pieces":      "4 croissants",
				"Allergens":   "Gluten, Dairy, Eggs",
				"Best Before": "12 hours",
			},
			ArrivalDate:  time.Now(),
			IsFresh:      true,
			FreshnessTag: "Baked this morning",
			Featured:     false,
			ProductType:  "just-baked",
			InStock:      boolPtr(true),
		},
		{
			Name:             "Double Chunk Cookie Jar",
			Category:         "Cookies",
			OriginalPrice:    599,
			Price:            499,
			Discount:         17,
			Rating:           4.5,
			Reviews:          87,
			Image:            "/Double-Chunk-Cookie-Jar.png",
			ShortDescription: "A dozen chewy cookies loaded with dark and milk chocolate chunks.",
			FullDescription:  "Brown-butter dough rested for 24 hours, studded with two kinds of chocolate and finished with flaky sea salt.",
			Features:         []string{"Brown-butter dough", "Two chocolates", "Flaky sea salt finish"},
			Specifications: map[string]string{
				"Pieces":      "12 cookies",
				"Allergens":   "Gluten, Dairy, Eggs",
				"Best Before": "7 days sealed",
			},
			ArrivalDate: daysAgo(5),
			IsFresh:     false,
			Featured:    true,
			ProductType: "regular",
			InStock:     boolPtr(true),
		},
		{
			Name:             "Classic Masala Namkeen Mix",
			Category:         "Namkeens",
			OriginalPrice:    249,
			Price:            199,
			Discount:         20,
			Rating:           4.3,
			Reviews:          58,
			Image:            "/Classic-Masala-Namkeen-Mix.jpg",
			ShortDescription: "Crunchy savoury mix of sev, peanuts, and curry leaves with a gentle chilli kick.",
			FullDescription:  "Roasted in small batches with cold-pressed groundnut oil and our house masala blend. The perfect chai-time companion.",
			Features:         []string{"Small batch roasted", "Cold-pressed oil", "No artificial flavours"},
			Specifications: map[string]string{
				"Weight":      "400 g",
				"Allergens":   "Peanuts",
				"Best Before": "30 days sealed",
			},
			ArrivalDate: daysAgo(10),
			IsFresh:     false,
			Featured:    false,
			ProductType: "regular",
			InStock:     boolPtr(true),
		},
		{
			Name:             "Garden Veggie Club Sandwich",
			Category:         "Sandwich",
			OriginalPrice:    329,
			Price:            279,
			Discount:         15,
			Rating:           4.4,
			Reviews:          41,
			Image:            "/Garden-Veggie-Club-Sandwich.png",
			ShortDescription: "Triple-decker on multigrain with herbed cream cheese, grilled vegetables, and rocket.",
			FullDescription:  "Built on our own multigrain loaf with char-grilled peppers, zucchini, and a lemon-herb cream cheese. Made fresh through the day.",
			Features:         []string{"House multigrain bread", "Char-grilled vegetables", "Made to order"},
			Specifications: map[string]string{
				"Pieces":      "1 sandwich, quartered",
				"Allergens":   "Gluten, Dairy",
				"Best Before": "12 hours",
			},
			ArrivalDate: daysAgo(2),
			IsFresh:     false,
			Featured:    false,
			ProductType: "regular",
			InStock:     boolPtr(true),
		},
	}
}
