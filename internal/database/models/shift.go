package models

// Shift represents a named working window. Start and end times are wall-clock
// "HH:MM" strings interpreted in the deployment's canonical time zone; a
// shift ending before it starts crosses midnight.
type Shift struct {
	BaseModel
	Name      string `json:"name" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	StartTime string `json:"start_time" gorm:"size:5;not null" validate:"required,len=5"`
	EndTime   string `json:"end_time" gorm:"size:5;not null" validate:"required,len=5"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
