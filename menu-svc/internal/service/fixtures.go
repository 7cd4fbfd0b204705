package service

import "savr/menu-svc/internal/domain"

// DefaultMenuImage is used when an upserted item has no image.
const DefaultMenuImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=900&q=80&auto=format&fit=crop"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?w=900&q=80&auto=format&fit=crop"
}

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

// FixtureRestaurants is the nearby catalog served to diners.
func FixtureRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:            "r1",
			Name:          "Spice Route Kitchen",
			Cuisine:       "Indian",
			DistanceKm:    1.4,
			AverageRating: 4.6,
			ImageURL:      unsplash("photo-1514933651103-005eec06c04b"),
			Foods: []domain.FoodItem{
				{ID: "f1", Name: "Butter Chicken Bowl", ActualPrice: 16.5, DiscountedPrice: 14.5,
					Description: "Creamy tomato gravy with basmati rice.", ImageURL: unsplash("photo-1631452180519-c014fe946bc7")},
				{ID: "f2", Name: "Paneer Tikka Wrap", ActualPrice: 12.75, DiscountedPrice: 11,
					Description: "Smoky paneer, mint chutney, and onions.", ImageURL: unsplash("photo-1562967916-eb82221dfb92")},
				{ID: "f7", Name: "Chicken Kathi Roll", ActualPrice: 14.25, DiscountedPrice: 12.4,
					Description: "Spiced chicken, onion salad, and mint mayo.", ImageURL: unsplash("photo-1529006557810-274b9b2fc783")},
				{ID: "f8", Name: "Dal Makhani Combo", ActualPrice: 13.1, DiscountedPrice: 11.85,
					Description: "Creamy black lentils with jeera rice and salad.", ImageURL: unsplash("photo-1585937421612-70a008356fbe")},
				{ID: "f9", Name: "Masala Lemon Soda", ActualPrice: 3.5, DiscountedPrice: 2.9,
					Description: "Refreshing lemon soda with roasted spice salt.", ImageURL: unsplash("photo-1536935338788-846bb9981813")},
			},
		},
		{
			ID:            "r2",
			Name:          "Green Fork Cafe",
			Cuisine:       "Healthy",
			DistanceKm:    2.1,
			AverageRating: 4.3,
			ImageURL:      unsplash("photo-1559339352-11d035aa65de"),
			Foods: []domain.FoodItem{
				{ID: "f3", Name: "Quinoa Harvest Salad", ActualPrice: 13.5, DiscountedPrice: 12,
					Description: "Seasonal greens, avocado, and citrus dressing.", ImageURL: unsplash("photo-1512621776951-a57141f2eefd")},
				{ID: "f4", Name: "Protein Power Wrap", ActualPrice: 15, DiscountedPrice: 13.25,
					Description: "Grilled chicken, hummus, and crisp vegetables.", ImageURL: unsplash("photo-1565299507177-b0ac66763828")},
				{ID: "f10", Name: "Greek Yogurt Bowl", ActualPrice: 10.5, DiscountedPrice: 9.25,
					Description: "Greek yogurt with berries, chia, and granola.", ImageURL: unsplash("photo-1488477304112-4944851de03d")},
				{ID: "f11", Name: "Avocado Toast Duo", ActualPrice: 11.9, DiscountedPrice: 10.4,
					Description: "Sourdough toast topped with smashed avocado.", ImageURL: unsplash("photo-1525351484163-7529414344d8")},
				{ID: "f12", Name: "Cold Brew Latte", ActualPrice: 5.75, DiscountedPrice: 4.95,
					Description: "Smooth cold brew with creamy milk foam.", ImageURL: unsplash("photo-1495474472287-4d71bcdd2085")},
			},
		},
		{
			ID:            "r3",
			Name:          "Urban Slice",
			Cuisine:       "Italian",
			DistanceKm:    0.9,
			AverageRating: 4.7,
			ImageURL:      unsplash("photo-1466978913421-dad2ebd01d17"),
			Foods: []domain.FoodItem{
				{ID: "f5", Name: "Margherita Pizza", ActualPrice: 17.25, DiscountedPrice: 15.5,
					Description: "Fresh mozzarella, basil, and tomato sauce.", ImageURL: unsplash("photo-1604382354936-07c5d9983bd3")},
				{ID: "f6", Name: "Pesto Pasta", ActualPrice: 16, DiscountedPrice: 13.75,
					Description: "Basil pesto, parmesan, and roasted tomatoes.", ImageURL: unsplash("photo-1621996346565-e3dbc353d2e5")},
				{ID: "f13", Name: "Farmhouse Pizza", ActualPrice: 18.5, DiscountedPrice: 16.2,
					Description: "Loaded with bell pepper, olives, and sweet corn.", ImageURL: unsplash("photo-1541745537411-b8046dc6d66c")},
				{ID: "f14", Name: "Garlic Breadsticks", ActualPrice: 8.25, DiscountedPrice: 6.9,
					Description: "Toasted breadsticks with garlic herb butter.", ImageURL: unsplash("photo-1573821663912-6df460f9c684")},
				{ID: "f15", Name: "Tiramisu Cup", ActualPrice: 7.5, DiscountedPrice: 6.35,
					Description: "Classic coffee-soaked layered mascarpone dessert.", ImageURL: unsplash("photo-1571877227200-a0d98ea607e9")},
			},
		},
	}
}

func FixtureProfile() domain.RestaurantProfile {
	return domain.RestaurantProfile{
		StoreName:      "Savr Signature Kitchen",
		OwnerName:      "Aarav Sharma",
		Phone:          "+91 98765 43210",
		Email:          "owner@savr.com",
		Address:        "12 Green Street, Bengaluru",
		Cuisine:        "Multi Cuisine",
		OpenTimeEpoch:  1739322000000,
		CloseTimeEpoch: 1739372400000,
	}
}

// FixtureMenu is listed newest first.
func FixtureMenu() []domain.FoodItem {
	return []domain.FoodItem{
		{
			ID:              "m1",
			Name:            "Pesto Pasta",
			Description:     "Basil pesto, parmesan, and roasted tomatoes.",
			ActualPrice:     320,
			DiscountedPrice: 275,
			ImageURL:        unsplash("photo-1473093295043-cdd812d0e601"),
			AvailableFrom:   int64Ptr(1739329200000),
			Quantity:        intPtr(25),
		},
		{
			ID:              "m2",
			Name:            "Paneer Tikka Wrap",
			Description:     "Smoky paneer, mint chutney, and onions.",
			ActualPrice:     240,
			DiscountedPrice: 210,
			ImageURL:        unsplash("photo-1504674900247-0877df9cc836"),
			AvailableFrom:   int64Ptr(1739332800000),
			Quantity:        intPtr(40),
		},
	}
}
