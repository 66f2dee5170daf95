package workforce

import (
	"math"

	"github.com/linskybing/bizportal/pkg/dberr"
	"gorm.io/gorm"
)

// subtotalEpsilon absorbs float rounding when checking hours * rate.
const subtotalEpsilon = 0.005

type InvoiceItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	InvoiceID  uint    `gorm:"not null;index" json:"invoice_id"`
	EmployeeID uint    `gorm:"not null;index" json:"employee_id"`
	Hours      float64 `gorm:"not null" json:"hours"`
	Rate       float64 `gorm:"not null" json:"rate"`
	Subtotal   float64 `gorm:"not null" json:"subtotal"`

	Invoice  *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Employee *User    `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (InvoiceItem) TableName() string {
	return "invoice_item"
}

func NewInvoiceItem(invoiceID, employeeID uint, hours, rate float64) *InvoiceItem {
	return &InvoiceItem{
		InvoiceID:  invoiceID,
		EmployeeID: employeeID,
		Hours:      hours,
		Rate:       rate,
		Subtotal:   hours * rate,
	}
}

// SubtotalMatches reports whether Subtotal equals Hours * Rate. Storage does not enforce it.
func (it *InvoiceItem) SubtotalMatches() bool {
	return math.Abs(it.Subtotal-it.Hours*it.Rate) < subtotalEpsilon
}

func (it *InvoiceItem) Validate() error {
	switch {
	case it.InvoiceID == 0:
		return dberr.Missing("invoice_id")
	case it.EmployeeID == 0:
		return dberr.Missing("employee_id")
	}
	return nil
}

func (it *InvoiceItem) BeforeSave(tx *gorm.DB) error {
	return it.Validate()
}
