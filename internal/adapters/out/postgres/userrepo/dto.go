// Package userrepo provides read access to user accounts. Authentication
// happens upstream; the order service resolves the external identity carried
// by each request into an internal user record.
package userrepo

import (
	"procurement/internal/core/domain/model/user"
)

// UserDTO represents the database structure of user accounts.
type UserDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Username    string `gorm:"size:100;uniqueIndex"`
	Email       string `gorm:"size:200;uniqueIndex"`
	FirstName   string `gorm:"size:100"`
	LastName    string `gorm:"size:100"`
	Role        string `gorm:"size:50"`
	ExternalUID string `gorm:"size:128;uniqueIndex"`
	Active      bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) *user.User {
	return &user.User{
		ID:          dto.ID,
		Username:    dto.Username,
		Email:       dto.Email,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Role:        dto.Role,
		ExternalUID: dto.ExternalUID,
		Active:      dto.Active,
	}
}
