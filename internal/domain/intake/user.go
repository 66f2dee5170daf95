package intake

import (
	"strings"

	"github.com/linskybing/bizportal/pkg/dberr"
	"github.com/linskybing/bizportal/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account of the public site. It lives in table "user", apart
// from the workforce "users" table.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:120;not null;unique" json:"email"`
	PasswordHash string `gorm:"size:200;not null" json:"-"`
}

func (User) TableName() string {
	return "user"
}

func (u *User) SetPassword(plain string) error {
	return u.SetPasswordWithCost(plain, bcrypt.DefaultCost)
}

// SetPasswordWithCost replaces the stored hash; on error the old hash is kept.
func (u *User) SetPasswordWithCost(plain string, cost int) error {
	hashed, err := utils.HashPassword(plain, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hashed
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return utils.CheckPassword(u.PasswordHash, plain)
}

func (u *User) Validate() error {
	switch {
	case strings.TrimSpace(u.FullName) == "":
		return dberr.Missing("full_name")
	case strings.TrimSpace(u.Email) == "":
		return dberr.Missing("email")
	case u.PasswordHash == "":
		return dberr.Missing("password_hash")
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}
