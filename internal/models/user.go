package models

import "fmt"

// UserModel is the identity record a profile hangs off. Accounts themselves
// are managed by the identity provider; only the columns the portfolio
// reads are kept here.
type UserModel struct {
	Base
	Username  string `json:"username"   gorm:"size:150;uniqueIndex;not null" validate:"required,max=150"`
	FirstName string `json:"first_name" gorm:"size:150"                      validate:"max=150"`
	LastName  string `json:"last_name"  gorm:"size:150"                      validate:"max=150"`
	Email     string `json:"email"      gorm:"size:254"                      validate:"omitempty,email,max=254"`
}

func (UserModel) TableName() string { return "users" }

func (u UserModel) String() string { return u.Username }

// FullName joins first and last name the way the profile displays it.
func (u UserModel) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
