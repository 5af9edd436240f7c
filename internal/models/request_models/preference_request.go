package request_models

type SavePreferencesRequest struct {
	FoodPreferences           []string `json:"foodPreferences"`
	BudgetRange               string   `json:"budgetRange"`
	PlaceTypes                []string `json:"placeTypes"`
	Activities                []string `json:"activities"`
	AccommodationType         []string `json:"accommodationType"`
	TransportationPreference  []string `json:"transportationPreference"`
	AdventureLevel            string   `json:"adventureLevel"`
	DietaryRestrictions       []string `json:"dietaryRestrictions"`
	AccessibilityRequirements []string `json:"accessibilityRequirements"`
	WeatherComfort            string   `json:"weatherComfort"`
	GroupSize                 string   `json:"groupSize"`
	LanguagesSpoken           []string `json:"languagesSpoken"`
	TravelPace                string   `json:"travelPace"`
}
