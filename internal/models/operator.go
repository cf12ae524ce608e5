// internal/models/operator.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Operator is the back-office principal. Sessions and permissions beyond
// "logged in" live with the auth collaborator, not here.
type Operator struct {
	BaseModel
	Email        string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Name         string `json:"name" gorm:"size:255"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

func (Operator) TableName() string {
	return "operators"
}

func (o *Operator) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	o.PasswordHash = string(hash)
	return nil
}

func (o *Operator) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) == nil
}
