package workforce

import (
	"strings"

	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

type Vendor struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:100;not null" json:"name"`
	Email   string  `gorm:"size:120;not null" json:"email"`
	Phone   *string `gorm:"size:20" json:"phone"`
	Terms   *string `gorm:"size:200" json:"terms"`
	Address *string `gorm:"size:200" json:"address"`
}

func (Vendor) TableName() string {
	return "vendor"
}

func (v *Vendor) Validate() error {
	switch {
	case strings.TrimSpace(v.Name) == "":
		return dberr.Missing("name")
	case strings.TrimSpace(v.Email) == "":
		return dberr.Missing("email")
	}
	return nil
}

func (v *Vendor) BeforeSave(tx *gorm.DB) error {
	return v.Validate()
}
