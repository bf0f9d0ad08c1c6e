package models

// Project represents a guarded site or engagement that schedules may be
// scoped to
type Project struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Location string `json:"location" gorm:"size:200" validate:"max=200"`
	Active   bool   `json:"active" gorm:"default:true"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
