package models

// Employee represents a field operator or supervisor in the registry.
// Cross-entity business rules beyond existence are owned elsewhere; the duty
// workflow only references employees by id and role.
type Employee struct {
	BaseModel
	FullName    string       `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	BadgeNumber string       `json:"badge_number" gorm:"size:40;uniqueIndex;not null" validate:"required,max=40"`
	Role        EmployeeRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Active      bool         `json:"active" gorm:"default:true"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
