package models

// UserProfile is the verified identity record referenced by email from every idea-owned row
type UserProfile struct {
	BaseModel
	Email       string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name        string   `json:"name" gorm:"size:200" validate:"max=200"`
	Role        UserRole `json:"role" gorm:"type:varchar(20);not null;default:'user'" validate:"required"`
	Team        *string  `json:"team,omitempty" gorm:"size:100;index"`
	ManagedTeam *string  `json:"managed_team,omitempty" gorm:"size:100;uniqueIndex"`
	IsVerified  bool     `json:"is_verified" gorm:"not null;default:false"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}

// IsAdmin reports whether the profile carries the admin role
func (u *UserProfile) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
