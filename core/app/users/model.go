package users

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is a back-office account of the portal
type User struct {
	Id        uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string         `json:"first_name" gorm:"column:first_name;not null;size:255"`
	LastName  string         `json:"last_name" gorm:"column:last_name;size:255"`
	Username  string         `json:"username" gorm:"column:username;unique;not null;size:255"`
	Phone     string         `json:"phone" gorm:"column:phone;size:255"`
	Email     string         `json:"email" gorm:"column:email;unique;not null;size:255"`
	Role      string         `json:"role" gorm:"column:role;size:64;default:agent"`
	LastLogin *time.Time     `json:"last_login,omitempty" gorm:"column:last_login"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

// TableName returns the table name for the User model
func (m *User) TableName() string {
	return "users"
}

// GetId returns the Id of the model
func (m *User) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *User) GetModelName() string {
	return "users"
}

// DisplayName is the full name, or the username when no name is set
func (m *User) DisplayName() string {
	name := strings.TrimSpace(m.FirstName + " " + m.LastName)
	if name == "" {
		return m.Username
	}
	return name
}
