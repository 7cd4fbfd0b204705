package domain

type FoodItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ActualPrice     float64 `json:"actual_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ImageURL        string  `json:"image_url,omitempty"`
	AvailableFrom   *int64  `json:"available_from,omitempty"`
	Quantity        *int    `json:"quantity,omitempty"`
}

type Restaurant struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Cuisine       string     `json:"cuisine"`
	DistanceKm    float64    `json:"distance_km"`
	AverageRating float64    `json:"average_rating"`
	ImageURL      string     `json:"image_url,omitempty"`
	Foods         []FoodItem `json:"foods"`
}

// RestaurantProfile is replaced wholesale on save.
type RestaurantProfile struct {
	StoreName      string `json:"store_name"`
	OwnerName      string `json:"owner_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Cuisine        string `json:"cuisine"`
	OpenTimeEpoch  int64  `json:"open_time_epoch"`
	CloseTimeEpoch int64  `json:"close_time_epoch"`
}

type ProfileView struct {
	RestaurantProfile
	OpenTimeLabel  string `json:"open_time_label"`
	CloseTimeLabel string `json:"close_time_label"`
}

// ProfileUpdate accepts either epochs or "HH:MM" labels for the opening
// hours. A label wins over the matching epoch when both are set.
type ProfileUpdate struct {
	RestaurantProfile
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

type MenuItemInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ActualPrice     float64 `json:"actual_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ImageURL        string  `json:"image_url"`
	AvailableFrom   int64   `json:"available_from"`
	Quantity        int     `json:"quantity"`
}

type MenuItemView struct {
	FoodItem
	FormattedActualPrice     string `json:"formatted_actual_price"`
	FormattedDiscountedPrice string `json:"formatted_discounted_price"`
	FormattedSavings         string `json:"formatted_savings"`
	AvailableFromLabel       string `json:"available_from_label,omitempty"`
}

type UpsertResult struct {
	Item        FoodItem `json:"item"`
	WasExisting bool     `json:"was_existing"`
	Message     string   `json:"message"`
}

type LookupResult struct {
	Item    *FoodItem `json:"item"`
	Message string    `json:"message"`
}

type SortBy string

const (
	SortByDistance SortBy = "distance"
	SortByRating   SortBy = "rating"
)

type RestaurantFilter struct {
	Query         string
	MaxDistanceKm float64
	MinRating     float64
	SortBy        SortBy
}
