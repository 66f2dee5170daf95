package workforce

import (
	"fmt"
	"strings"

	"github.com/linskybing/bizportal/pkg/dberr"
	"github.com/linskybing/bizportal/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an employee, admin or vendor contact of the billing application.
type User struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	FullName     string   `gorm:"size:150;not null" json:"full_name"`
	CompanyName  *string  `gorm:"size:150" json:"company_name"`
	PhoneNumber  string   `gorm:"size:20;not null" json:"phone_number"`
	Email        string   `gorm:"size:150;not null;unique" json:"email"`
	PasswordHash string   `gorm:"size:256;not null" json:"-"`
	Role         Role     `gorm:"default:1" json:"role"`
	HourlyRate   *float64 `json:"hourly_rate"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) SetPassword(plain string) error {
	return u.SetPasswordWithCost(plain, bcrypt.DefaultCost)
}

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

func (u *User) IsEmployee() bool { return u.Role == RoleEmployee }
func (u *User) IsAdmin() bool    { return u.Role == RoleAdmin }
func (u *User) IsVendor() bool   { return u.Role == RoleVendor }

func (u *User) Validate() error {
	switch {
	case strings.TrimSpace(u.FullName) == "":
		return dberr.Missing("full_name")
	case strings.TrimSpace(u.PhoneNumber) == "":
		return dberr.Missing("phone_number")
	case strings.TrimSpace(u.Email) == "":
		return dberr.Missing("email")
	case u.PasswordHash == "":
		return dberr.Missing("password_hash")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid role %d", int(u.Role))
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Role == 0 {
		u.Role = RoleEmployee
	}
	return u.Validate()
}
