package db_models

type Profile struct {
	BaseModel
	FullName       string
	Email          string
	Country        string
	City           string
	ProfilePicture string
}
