package response_models

type ProfileResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Country        string `json:"country"`
	City           string `json:"city"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type PreferencesResponse struct {
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
