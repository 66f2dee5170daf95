package intake

import (
	"strings"

	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

// Contact is one submission of the public inquiry form. Rows are never updated.
type Contact struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Email       string  `gorm:"size:120;not null" json:"email"`
	Phone       *string `gorm:"size:20" json:"phone"`
	Company     *string `gorm:"size:100" json:"company"`
	InquiryType string  `gorm:"size:50;not null" json:"inquiry_type"`
	Message     string  `gorm:"type:text;not null" json:"message"`
}

func (Contact) TableName() string {
	return "contact"
}

func (c *Contact) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return dberr.Missing("name")
	case strings.TrimSpace(c.Email) == "":
		return dberr.Missing("email")
	case strings.TrimSpace(c.InquiryType) == "":
		return dberr.Missing("inquiry_type")
	case strings.TrimSpace(c.Message) == "":
		return dberr.Missing("message")
	}
	return nil
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	return c.Validate()
}
