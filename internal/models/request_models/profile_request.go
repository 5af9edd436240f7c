package request_models

// UpdateProfileRequest carries partial updates; nil fields are left untouched.
type UpdateProfileRequest struct {
	FullName       *string `json:"fullName"`
	Email          *string `json:"email"`
	Country        *string `json:"country"`
	City           *string `json:"city"`
	ProfilePicture *string `json:"profilePicture"`
}
