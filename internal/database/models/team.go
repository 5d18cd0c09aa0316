package models

// Team is a flat organisational unit; users belong to one and managers manage one
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Title       string `json:"title" gorm:"size:200" validate:"max=200"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
