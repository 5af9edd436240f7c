package request_models

type CreateTripRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
}

// UpdateTripRequest carries partial updates; nil fields are left untouched.
type UpdateTripRequest struct {
	Destination *string `json:"destination"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Duration    *int    `json:"duration"`
}
