package models

// Dog represents a service dog in the registry
type Dog struct {
	BaseModel
	Name   string `json:"name" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	Breed  string `json:"breed" gorm:"size:60" validate:"max=60"`
	Active bool   `json:"active" gorm:"default:true"`
}

// TableName returns the table name for Dog
func (Dog) TableName() string {
	return "dogs"
}
